package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

type eventLogRepoStub struct {
	entries   []models.EventHistoryLog
	filter    models.EventLogFilter
	appendErr error
}

func (s *eventLogRepoStub) Append(_ context.Context, entry *models.EventHistoryLog) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	entry.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *eventLogRepoStub) List(_ context.Context, filter models.EventLogFilter) ([]models.EventHistoryLog, int, error) {
	s.filter = filter
	return s.entries, len(s.entries), nil
}

func TestEventLogAppendStampsActorAndTime(t *testing.T) {
	repo := &eventLogRepoStub{}
	svc := NewEventLogService(repo, nil)
	fixed := time.Date(2024, 4, 2, 9, 0, 0, 0, time.FixedZone("EET", 2*3600))
	svc.now = func() time.Time { return fixed }

	ctx := models.ContextWithActor(context.Background(), "org.admin@fleet.test")
	require.NoError(t, svc.Append(ctx, "create vehicle", `{"before":null,"after":{"id":1}}`))
	require.NoError(t, svc.Append(context.Background(), "delete vehicle", `{}`))

	require.Len(t, repo.entries, 2)
	assert.Equal(t, "org.admin@fleet.test", repo.entries[0].WhoDid)
	assert.Equal(t, "create vehicle", repo.entries[0].Action)
	assert.Equal(t, time.UTC, repo.entries[0].Timestamp.Location())
	assert.True(t, fixed.Equal(repo.entries[0].Timestamp))
	assert.Equal(t, models.AnonymousActor, repo.entries[1].WhoDid)
}

func TestEventLogAppendFailure(t *testing.T) {
	svc := NewEventLogService(&eventLogRepoStub{appendErr: errors.New("read-only")}, nil)

	err := svc.Append(context.Background(), "create vehicle", "{}")

	assert.EqualError(t, err, "failed to append event history: read-only")
}

func TestEventLogListNormalizesPaging(t *testing.T) {
	repo := &eventLogRepoStub{entries: []models.EventHistoryLog{{ID: 1}, {ID: 2}}}
	svc := NewEventLogService(repo, nil)

	entries, page, err := svc.List(context.Background(), models.EventLogFilter{ListFilter: models.ListFilter{Page: -1, PageSize: 500}, Action: "delete"})

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, "delete", repo.filter.Action)
}
