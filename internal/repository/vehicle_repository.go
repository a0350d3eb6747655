package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

const vehicleColumns = `id, name, producer, model, registration_number, production_year, description, organisation_id, created_at, updated_at`

type vehicleRow struct {
	models.Vehicle
	OrganisationRef *int64 `db:"organisation_id"`
}

func (r vehicleRow) model() models.Vehicle {
	v := r.Vehicle
	if r.OrganisationRef != nil {
		v.Organisation = &models.Organisation{ID: *r.OrganisationRef}
	}
	return v
}

// VehicleRepository provides database access for vehicles.
type VehicleRepository struct {
	db *sqlx.DB
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// FindByID returns a vehicle with an organisation reference stub, or sql.ErrNoRows.
func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	query := r.db.Rebind(`SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ? LIMIT 1`)
	var row vehicleRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find vehicle by id: %w", err)
	}
	v := row.model()
	return &v, nil
}

// List returns a page of vehicles matching name or registration number.
func (r *VehicleRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Vehicle, int, error) {
	filter.Normalize()
	baseQuery := ` FROM vehicles WHERE 1=1`
	var args []interface{}
	if filter.Search != "" {
		baseQuery += ` AND (LOWER(name) LIKE ? OR LOWER(registration_number) LIKE ?)`
		pattern := likePattern(filter.Search)
		args = append(args, pattern, pattern)
	}

	listQuery := r.db.Rebind(fmt.Sprintf("SELECT %s%s ORDER BY id ASC LIMIT %d OFFSET %d", vehicleColumns, baseQuery, filter.PageSize, filter.Offset()))
	var rows []vehicleRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list vehicles: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind("SELECT COUNT(*)"+baseQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("count vehicles: %w", err)
	}

	vehicles := make([]models.Vehicle, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, row.model())
	}
	return vehicles, total, nil
}

// Create inserts the vehicle and assigns its generated id.
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	now := time.Now().UTC()
	v.CreatedAt, v.UpdatedAt = &now, &now
	query := r.db.Rebind(`INSERT INTO vehicles (name, producer, model, registration_number, production_year, description, organisation_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query,
		v.Name, v.Producer, v.Model, v.RegistrationNumber, v.ProductionYear, v.Description, v.OrganisationID(), now, now,
	).Scan(&v.ID); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

// Update overwrites every mutable column.
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	now := time.Now().UTC()
	v.UpdatedAt = &now
	return execAffectingOne(ctx, r.db, "update vehicle",
		`UPDATE vehicles SET name = ?, producer = ?, model = ?, registration_number = ?, production_year = ?, description = ?, organisation_id = ?, updated_at = ? WHERE id = ?`,
		v.Name, v.Producer, v.Model, v.RegistrationNumber, v.ProductionYear, v.Description, v.OrganisationID(), now, v.ID)
}

// Delete removes the vehicle.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, "delete vehicle", `DELETE FROM vehicles WHERE id = ?`, id)
}

// CountByOrganisation returns the number of vehicles assigned to an organisation.
func (r *VehicleRepository) CountByOrganisation(ctx context.Context, organisationID int64) (int, error) {
	var total int
	query := r.db.Rebind(`SELECT COUNT(*) FROM vehicles WHERE organisation_id = ?`)
	if err := r.db.GetContext(ctx, &total, query, organisationID); err != nil {
		return 0, fmt.Errorf("count vehicles by organisation: %w", err)
	}
	return total, nil
}
