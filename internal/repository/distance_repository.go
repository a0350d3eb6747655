package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

const distanceColumns = `id, kilometres, vehicle_id, description, timestamp`

type distanceRow struct {
	models.Distance
	VehicleRef *int64 `db:"vehicle_id"`
}

func (r distanceRow) model() models.Distance {
	d := r.Distance
	if r.VehicleRef != nil {
		d.Vehicle = &models.Vehicle{ID: *r.VehicleRef}
	}
	return d
}

func distanceModels(rows []distanceRow) []models.Distance {
	out := make([]models.Distance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out
}

// DistanceTotals aggregates distance records of one vehicle.
type DistanceTotals struct {
	Kilometres int64 `db:"total_kilometres"`
	Records    int64 `db:"distance_records"`
}

// DistanceRepository provides database access for distance records.
type DistanceRepository struct {
	db *sqlx.DB
}

// NewDistanceRepository creates a new instance of DistanceRepository.
func NewDistanceRepository(db *sqlx.DB) *DistanceRepository {
	return &DistanceRepository{db: db}
}

// FindByID returns a distance record with a vehicle reference stub, or sql.ErrNoRows.
func (r *DistanceRepository) FindByID(ctx context.Context, id int64) (*models.Distance, error) {
	query := r.db.Rebind(`SELECT ` + distanceColumns + ` FROM distances WHERE id = ? LIMIT 1`)
	var row distanceRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find distance by id: %w", err)
	}
	d := row.model()
	return &d, nil
}

// List returns a page of distance records, newest first.
func (r *DistanceRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Distance, int, error) {
	filter.Normalize()
	baseQuery := ` FROM distances WHERE 1=1`
	var args []interface{}
	if filter.Search != "" {
		baseQuery += ` AND LOWER(description) LIKE ?`
		args = append(args, likePattern(filter.Search))
	}

	listQuery := r.db.Rebind(fmt.Sprintf("SELECT %s%s ORDER BY timestamp DESC, id DESC LIMIT %d OFFSET %d", distanceColumns, baseQuery, filter.PageSize, filter.Offset()))
	var rows []distanceRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list distances: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind("SELECT COUNT(*)"+baseQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("count distances: %w", err)
	}
	return distanceModels(rows), total, nil
}

// ListByVehicle returns every distance record of a vehicle in chronological order.
func (r *DistanceRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.Distance, error) {
	query := r.db.Rebind(`SELECT ` + distanceColumns + ` FROM distances WHERE vehicle_id = ? ORDER BY timestamp ASC, id ASC`)
	var rows []distanceRow
	if err := r.db.SelectContext(ctx, &rows, query, vehicleID); err != nil {
		return nil, fmt.Errorf("list distances by vehicle: %w", err)
	}
	return distanceModels(rows), nil
}

// Create inserts the record and assigns its generated id.
func (r *DistanceRepository) Create(ctx context.Context, d *models.Distance) error {
	query := r.db.Rebind(`INSERT INTO distances (kilometres, vehicle_id, description, timestamp) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, d.Kilometres, nullableID(d.VehicleID()), d.Description, d.Timestamp).Scan(&d.ID); err != nil {
		return fmt.Errorf("create distance: %w", err)
	}
	return nil
}

// Update overwrites every mutable column.
func (r *DistanceRepository) Update(ctx context.Context, d *models.Distance) error {
	return execAffectingOne(ctx, r.db, "update distance",
		`UPDATE distances SET kilometres = ?, vehicle_id = ?, description = ?, timestamp = ? WHERE id = ?`,
		d.Kilometres, nullableID(d.VehicleID()), d.Description, d.Timestamp, d.ID)
}

// Delete removes the record.
func (r *DistanceRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, "delete distance", `DELETE FROM distances WHERE id = ?`, id)
}

// CountByVehicle returns the number of distance records for a vehicle.
func (r *DistanceRepository) CountByVehicle(ctx context.Context, vehicleID int64) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(`SELECT COUNT(*) FROM distances WHERE vehicle_id = ?`), vehicleID); err != nil {
		return 0, fmt.Errorf("count distances by vehicle: %w", err)
	}
	return total, nil
}

// TotalsByVehicle sums the kilometres driven by a vehicle.
func (r *DistanceRepository) TotalsByVehicle(ctx context.Context, vehicleID int64) (DistanceTotals, error) {
	var totals DistanceTotals
	query := r.db.Rebind(`SELECT COALESCE(SUM(kilometres), 0) AS total_kilometres, COUNT(*) AS distance_records FROM distances WHERE vehicle_id = ?`)
	if err := r.db.GetContext(ctx, &totals, query, vehicleID); err != nil {
		return DistanceTotals{}, fmt.Errorf("sum distances by vehicle: %w", err)
	}
	return totals, nil
}
