package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

type logbookStub struct {
	distances []models.Distance
	refuels   []models.Refuel
}

type distanceLogbookStub struct{ *logbookStub }

func (s distanceLogbookStub) ListByVehicle(context.Context, int64) ([]models.Distance, error) {
	return s.distances, nil
}

type refuelLogbookStub struct{ *logbookStub }

func (s refuelLogbookStub) ListByVehicle(context.Context, int64) ([]models.Refuel, error) {
	return s.refuels, nil
}

func newTestExportService(t *testing.T) *ExportService {
	t.Helper()
	vehicles := newMemoryStore(vehicleID, setVehicleID, models.Vehicle.Clone)
	vehicles.seed(models.Vehicle{ID: 3, Name: "Van", RegistrationNumber: stringPtr("ABC-123")})
	book := &logbookStub{
		distances: []models.Distance{
			{ID: 1, Kilometres: int64Ptr(120), Timestamp: localTime("2024-03-02T08:00"), Description: stringPtr("site visit")},
			{ID: 2, Kilometres: int64Ptr(30)},
		},
		refuels: []models.Refuel{
			{ID: 1, RefuelAmount: float64Ptr(40), Price: float64Ptr(75.5), FuelName: stringPtr("Diesel"), Location: stringPtr("Espoo"), Timestamp: localTime("2024-03-01T17:10")},
		},
	}
	svc := NewExportService(vehicles, distanceLogbookStub{book}, refuelLogbookStub{book}, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestLogbookCSVIsChronological(t *testing.T) {
	svc := newTestExportService(t)

	result, err := svc.Logbook(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, "vehicle-3-logbook-20240305.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Timestamp,Type,Kilometres,Fuel,Price,Details,Description", lines[0])
	assert.Equal(t, `2024-03-01T17:10,Refuel,,40.00,75.50,"Diesel, Espoo",`, lines[1])
	assert.Equal(t, "2024-03-02T08:00,Distance,120,,,,site visit", lines[2])
	assert.Equal(t, ",Distance,30,,,,", lines[3])
	assert.Equal(t, "Total,,150,40.00,75.50,,", lines[4])
}

func TestLogbookPDF(t *testing.T) {
	svc := newTestExportService(t)

	result, err := svc.Logbook(context.Background(), 3, "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestLogbookErrors(t *testing.T) {
	svc := newTestExportService(t)

	_, err := svc.Logbook(context.Background(), 3, "xlsx")
	assert.Equal(t, http.StatusBadRequest, appErrors.StatusOf(err))

	_, err = svc.Logbook(context.Background(), 9, "csv")
	assert.Equal(t, http.StatusNotFound, appErrors.StatusOf(err))
}
