package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/repository"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

func TestSummaryIsCachedUntilCommit(t *testing.T) {
	f := newFleetFixture()
	f.totals.distance = repository.DistanceTotals{Kilometres: 140, Records: 2}
	f.totals.refuel = repository.RefuelTotals{Amount: 55.5, Cost: 98.2, Records: 1}
	ctx := context.Background()

	first, err := f.summary.Summary(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 140, first.TotalKilometres)
	assert.EqualValues(t, 2, first.DistanceRecords)
	assert.Equal(t, 55.5, first.TotalFuel)
	assert.Equal(t, 98.2, first.TotalFuelCost)

	_, err = f.summary.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.totals.calls)

	res := f.distanceService.Process(ctx, MutationCreate, json.RawMessage(`{"kilometres": 10, "vehicle": {"id": 1}}`))
	require.Equal(t, http.StatusOK, res.HTTPStatus, res.Message)
	f.totals.distance = repository.DistanceTotals{Kilometres: 150, Records: 3}

	refreshed, err := f.summary.Summary(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 150, refreshed.TotalKilometres)
	assert.Equal(t, 2, f.totals.calls)
}

func TestSummaryOfUnknownVehicle(t *testing.T) {
	f := newFleetFixture()

	_, err := f.summary.Summary(context.Background(), 77)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.StatusOf(err))
}

func TestSummaryWithoutCache(t *testing.T) {
	f := newFleetFixture()
	summary := NewSummaryService(f.vehicles, distanceTotalsStub{f.totals}, refuelTotalsStub{f.totals}, nil, 0, nil)

	_, err := summary.Summary(context.Background(), 2)
	require.NoError(t, err)
	_, err = summary.Summary(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, f.totals.calls)
	summary.Invalidate(context.Background(), 2)
}

func TestInvalidateDeduplicatesVehicles(t *testing.T) {
	f := newFleetFixture()

	f.summary.Invalidate(context.Background(), 1, 0, 1, 2)

	assert.Equal(t, []string{"vehicle:1:summary", "vehicle:2:summary"}, f.cache.deleted)

	var nilSummary *SummaryService
	nilSummary.Invalidate(context.Background(), 1)
}
