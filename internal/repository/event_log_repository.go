package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

// EventLogRepository persists the mutation audit trail.
type EventLogRepository struct {
	db *sqlx.DB
}

// NewEventLogRepository creates a new instance of EventLogRepository.
func NewEventLogRepository(db *sqlx.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// Append inserts an entry and assigns its generated id.
func (r *EventLogRepository) Append(ctx context.Context, entry *models.EventHistoryLog) error {
	query := r.db.Rebind(`INSERT INTO event_history_logs (timestamp, who_did, action, description) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, entry.Timestamp, entry.WhoDid, entry.Action, entry.Description).Scan(&entry.ID); err != nil {
		return fmt.Errorf("append event log: %w", err)
	}
	return nil
}

// List returns a page of entries, newest first.
func (r *EventLogRepository) List(ctx context.Context, filter models.EventLogFilter) ([]models.EventHistoryLog, int, error) {
	filter.Normalize()
	baseQuery := ` FROM event_history_logs WHERE 1=1`
	var args []interface{}
	if filter.Action != "" {
		baseQuery += ` AND action = ?`
		args = append(args, filter.Action)
	}
	if filter.WhoDid != "" {
		baseQuery += ` AND who_did = ?`
		args = append(args, filter.WhoDid)
	}
	if filter.Search != "" {
		baseQuery += ` AND LOWER(description) LIKE ?`
		args = append(args, likePattern(filter.Search))
	}

	listQuery := r.db.Rebind(fmt.Sprintf("SELECT id, timestamp, who_did, action, description%s ORDER BY timestamp DESC, id DESC LIMIT %d OFFSET %d", baseQuery, filter.PageSize, filter.Offset()))
	entries := []models.EventHistoryLog{}
	if err := r.db.SelectContext(ctx, &entries, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list event logs: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind("SELECT COUNT(*)"+baseQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("count event logs: %w", err)
	}
	return entries, total, nil
}
