package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

const refuelColumns = `id, location, fuel_name, refuel_amount, price, vehicle_id, description, timestamp`

type refuelRow struct {
	models.Refuel
	VehicleRef *int64 `db:"vehicle_id"`
}

func (r refuelRow) model() models.Refuel {
	out := r.Refuel
	if r.VehicleRef != nil {
		out.Vehicle = &models.Vehicle{ID: *r.VehicleRef}
	}
	return out
}

func refuelModels(rows []refuelRow) []models.Refuel {
	out := make([]models.Refuel, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out
}

// RefuelTotals aggregates refuel records of one vehicle.
type RefuelTotals struct {
	Amount  float64 `db:"total_fuel"`
	Cost    float64 `db:"total_fuel_cost"`
	Records int64   `db:"refuel_records"`
}

// RefuelRepository provides database access for refuel records.
type RefuelRepository struct {
	db *sqlx.DB
}

// NewRefuelRepository creates a new instance of RefuelRepository.
func NewRefuelRepository(db *sqlx.DB) *RefuelRepository {
	return &RefuelRepository{db: db}
}

// FindByID returns a refuel record with a vehicle reference stub, or sql.ErrNoRows.
func (r *RefuelRepository) FindByID(ctx context.Context, id int64) (*models.Refuel, error) {
	query := r.db.Rebind(`SELECT ` + refuelColumns + ` FROM refuels WHERE id = ? LIMIT 1`)
	var row refuelRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find refuel by id: %w", err)
	}
	out := row.model()
	return &out, nil
}

// List returns a page of refuel records, newest first.
func (r *RefuelRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Refuel, int, error) {
	filter.Normalize()
	baseQuery := ` FROM refuels WHERE 1=1`
	var args []interface{}
	if filter.Search != "" {
		baseQuery += ` AND (LOWER(location) LIKE ? OR LOWER(fuel_name) LIKE ?)`
		pattern := likePattern(filter.Search)
		args = append(args, pattern, pattern)
	}

	listQuery := r.db.Rebind(fmt.Sprintf("SELECT %s%s ORDER BY timestamp DESC, id DESC LIMIT %d OFFSET %d", refuelColumns, baseQuery, filter.PageSize, filter.Offset()))
	var rows []refuelRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list refuels: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind("SELECT COUNT(*)"+baseQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("count refuels: %w", err)
	}
	return refuelModels(rows), total, nil
}

// ListByVehicle returns every refuel record of a vehicle in chronological order.
func (r *RefuelRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.Refuel, error) {
	query := r.db.Rebind(`SELECT ` + refuelColumns + ` FROM refuels WHERE vehicle_id = ? ORDER BY timestamp ASC, id ASC`)
	var rows []refuelRow
	if err := r.db.SelectContext(ctx, &rows, query, vehicleID); err != nil {
		return nil, fmt.Errorf("list refuels by vehicle: %w", err)
	}
	return refuelModels(rows), nil
}

// Create inserts the record and assigns its generated id.
func (r *RefuelRepository) Create(ctx context.Context, rf *models.Refuel) error {
	query := r.db.Rebind(`INSERT INTO refuels (location, fuel_name, refuel_amount, price, vehicle_id, description, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query,
		rf.Location, rf.FuelName, rf.RefuelAmount, rf.Price, nullableID(rf.VehicleID()), rf.Description, rf.Timestamp,
	).Scan(&rf.ID); err != nil {
		return fmt.Errorf("create refuel: %w", err)
	}
	return nil
}

// Update overwrites every mutable column.
func (r *RefuelRepository) Update(ctx context.Context, rf *models.Refuel) error {
	return execAffectingOne(ctx, r.db, "update refuel",
		`UPDATE refuels SET location = ?, fuel_name = ?, refuel_amount = ?, price = ?, vehicle_id = ?, description = ?, timestamp = ? WHERE id = ?`,
		rf.Location, rf.FuelName, rf.RefuelAmount, rf.Price, nullableID(rf.VehicleID()), rf.Description, rf.Timestamp, rf.ID)
}

// Delete removes the record.
func (r *RefuelRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, "delete refuel", `DELETE FROM refuels WHERE id = ?`, id)
}

// CountByVehicle returns the number of refuel records for a vehicle.
func (r *RefuelRepository) CountByVehicle(ctx context.Context, vehicleID int64) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(`SELECT COUNT(*) FROM refuels WHERE vehicle_id = ?`), vehicleID); err != nil {
		return 0, fmt.Errorf("count refuels by vehicle: %w", err)
	}
	return total, nil
}

// TotalsByVehicle sums fuel volume and spend for a vehicle.
func (r *RefuelRepository) TotalsByVehicle(ctx context.Context, vehicleID int64) (RefuelTotals, error) {
	var totals RefuelTotals
	query := r.db.Rebind(`SELECT COALESCE(SUM(refuel_amount), 0) AS total_fuel, COALESCE(SUM(price), 0) AS total_fuel_cost, COUNT(*) AS refuel_records FROM refuels WHERE vehicle_id = ?`)
	if err := r.db.GetContext(ctx, &totals, query, vehicleID); err != nil {
		return RefuelTotals{}, fmt.Errorf("sum refuels by vehicle: %w", err)
	}
	return totals, nil
}
