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

const organisationColumns = `id, name, description, created_at, updated_at`

// OrganisationRepository provides database access for organisations.
type OrganisationRepository struct {
	db *sqlx.DB
}

// NewOrganisationRepository creates a new instance of OrganisationRepository.
func NewOrganisationRepository(db *sqlx.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// FindByID returns an organisation or sql.ErrNoRows.
func (r *OrganisationRepository) FindByID(ctx context.Context, id int64) (*models.Organisation, error) {
	query := r.db.Rebind(`SELECT ` + organisationColumns + ` FROM organisations WHERE id = ? LIMIT 1`)
	var org models.Organisation
	if err := r.db.GetContext(ctx, &org, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find organisation by id: %w", err)
	}
	return &org, nil
}

// List returns a page of organisations with the total count.
func (r *OrganisationRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Organisation, int, error) {
	filter.Normalize()
	baseQuery := ` FROM organisations WHERE 1=1`
	var args []interface{}
	if filter.Search != "" {
		baseQuery += ` AND LOWER(name) LIKE ?`
		args = append(args, likePattern(filter.Search))
	}

	listQuery := r.db.Rebind(fmt.Sprintf("SELECT %s%s ORDER BY id ASC LIMIT %d OFFSET %d", organisationColumns, baseQuery, filter.PageSize, filter.Offset()))
	orgs := []models.Organisation{}
	if err := r.db.SelectContext(ctx, &orgs, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list organisations: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind("SELECT COUNT(*)"+baseQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("count organisations: %w", err)
	}
	return orgs, total, nil
}

// Create inserts the organisation and assigns its generated id.
func (r *OrganisationRepository) Create(ctx context.Context, org *models.Organisation) error {
	now := time.Now().UTC()
	org.CreatedAt, org.UpdatedAt = &now, &now
	query := r.db.Rebind(`INSERT INTO organisations (name, description, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, org.Name, org.Description, now, now).Scan(&org.ID); err != nil {
		return fmt.Errorf("create organisation: %w", err)
	}
	return nil
}

// Update overwrites every mutable column.
func (r *OrganisationRepository) Update(ctx context.Context, org *models.Organisation) error {
	now := time.Now().UTC()
	org.UpdatedAt = &now
	return execAffectingOne(ctx, r.db, "update organisation",
		`UPDATE organisations SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		org.Name, org.Description, now, org.ID)
}

// Delete removes the organisation.
func (r *OrganisationRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, "delete organisation", `DELETE FROM organisations WHERE id = ?`, id)
}
