package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

type eventLogRepository interface {
	Append(ctx context.Context, entry *models.EventHistoryLog) error
	List(ctx context.Context, filter models.EventLogFilter) ([]models.EventHistoryLog, int, error)
}

// EventLogService is the audit sink of the mutation engines and serves the
// event history listing.
type EventLogService struct {
	repo   eventLogRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewEventLogService constructs an EventLogService.
func NewEventLogService(repo eventLogRepository, logger *zap.Logger) *EventLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventLogService{repo: repo, logger: logger, now: time.Now}
}

// Append records a committed mutation attributed to the actor in ctx.
func (s *EventLogService) Append(ctx context.Context, action, description string) error {
	entry := &models.EventHistoryLog{
		Timestamp:   s.now().UTC(),
		WhoDid:      models.ActorFromContext(ctx),
		Action:      action,
		Description: description,
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to append event history")
	}
	s.logger.Debug("event history appended", zap.Int64("id", entry.ID), zap.String("action", action), zap.String("who_did", entry.WhoDid))
	return nil
}

// List returns a page of events, newest first.
func (s *EventLogService) List(ctx context.Context, filter models.EventLogFilter) ([]models.EventHistoryLog, *models.Pagination, error) {
	filter.Normalize()
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list event history")
	}
	return entries, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}
