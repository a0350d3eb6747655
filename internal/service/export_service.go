package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/export"
)

type distanceLogbook interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.Distance, error)
}

type refuelLogbook interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.Refuel, error)
}

// ExportResult is a rendered document ready to be streamed.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders vehicle logbooks.
type ExportService struct {
	vehicles  vehicleFinder
	distances distanceLogbook
	refuels   refuelLogbook
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(vehicles vehicleFinder, distances distanceLogbook, refuels refuelLogbook, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{vehicles: vehicles, distances: distances, refuels: refuels, logger: logger, now: time.Now}
}

// VehicleDistances lists the distance records of one vehicle.
func (s *ExportService) VehicleDistances(ctx context.Context, vehicleID int64) ([]models.Distance, error) {
	if _, err := loadVehicle(ctx, s.vehicles, vehicleID); err != nil {
		return nil, err
	}
	items, err := s.distances.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, internalError(err, "failed to list vehicle distances")
	}
	return items, nil
}

// VehicleRefuels lists the refuel records of one vehicle.
func (s *ExportService) VehicleRefuels(ctx context.Context, vehicleID int64) ([]models.Refuel, error) {
	if _, err := loadVehicle(ctx, s.vehicles, vehicleID); err != nil {
		return nil, err
	}
	items, err := s.refuels.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, internalError(err, "failed to list vehicle refuels")
	}
	return items, nil
}

type logbookEntry struct {
	at   *models.LocalDateTime
	kind string
	id   int64
	row  []string
}

// Logbook renders the merged, chronological distance and refuel history of a vehicle.
func (s *ExportService) Logbook(ctx context.Context, vehicleID int64, rawFormat string) (*ExportResult, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	vehicle, err := loadVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}
	distances, err := s.distances.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, internalError(err, "failed to list vehicle distances")
	}
	refuels, err := s.refuels.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, internalError(err, "failed to list vehicle refuels")
	}

	table := buildLogbook(vehicle, distances, refuels)
	data, err := export.RendererFor(format).Render(table)
	if err != nil {
		return nil, internalError(err, "failed to render logbook")
	}

	s.logger.Info("logbook exported",
		zap.Int64("vehicle_id", vehicleID),
		zap.String("format", string(format)),
		zap.Int("rows", len(table.Rows)),
	)
	return &ExportResult{
		Filename:    fmt.Sprintf("vehicle-%d-logbook-%s.%s", vehicleID, s.now().UTC().Format("20060102"), format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func buildLogbook(vehicle *models.Vehicle, distances []models.Distance, refuels []models.Refuel) export.Table {
	entries := make([]logbookEntry, 0, len(distances)+len(refuels))
	var totalKm int64
	var totalFuel, totalCost float64

	for _, d := range distances {
		if d.Kilometres != nil {
			totalKm += *d.Kilometres
		}
		entries = append(entries, logbookEntry{at: d.Timestamp, kind: "distance", id: d.ID, row: []string{
			formatTimestamp(d.Timestamp), "Distance", formatInt(d.Kilometres), "", "", "", deref(d.Description),
		}})
	}
	for _, r := range refuels {
		if r.RefuelAmount != nil {
			totalFuel += *r.RefuelAmount
		}
		if r.Price != nil {
			totalCost += *r.Price
		}
		entries = append(entries, logbookEntry{at: r.Timestamp, kind: "refuel", id: r.ID, row: []string{
			formatTimestamp(r.Timestamp), "Refuel", "", formatFloat(r.RefuelAmount), formatFloat(r.Price), joinNonEmpty(deref(r.FuelName), deref(r.Location)), deref(r.Description),
		}})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.at == nil && b.at == nil:
		case a.at == nil:
			return false
		case b.at == nil:
			return true
		case !a.at.Equal(b.at.Time):
			return a.at.Before(b.at.Time)
		}
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.id < b.id
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.row)
	}

	title := "Logbook: " + vehicle.Name
	if vehicle.RegistrationNumber != nil && *vehicle.RegistrationNumber != "" {
		title += " (" + *vehicle.RegistrationNumber + ")"
	}
	return export.Table{
		Title:   title,
		Headers: []string{"Timestamp", "Type", "Kilometres", "Fuel", "Price", "Details", "Description"},
		Rows:    rows,
		Footer: []string{
			"Total", "", strconv.FormatInt(totalKm, 10),
			strconv.FormatFloat(totalFuel, 'f', 2, 64), strconv.FormatFloat(totalCost, 'f', 2, 64), "", "",
		},
	}
}

func formatTimestamp(ts *models.LocalDateTime) string {
	if ts == nil {
		return ""
	}
	return ts.String()
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
