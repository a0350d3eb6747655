package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/config"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/database"
)

func newSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.NewSQLite(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

func TestSQLiteFleetRoundTrip(t *testing.T) {
	db := newSQLite(t)
	ctx := context.Background()

	orgs := NewOrganisationRepository(db)
	vehicles := NewVehicleRepository(db)
	distances := NewDistanceRepository(db)

	org := &models.Organisation{Name: "Metro"}
	require.NoError(t, orgs.Create(ctx, org))
	require.NotZero(t, org.ID)

	van := &models.Vehicle{Name: "Van 1", Organisation: &models.Organisation{ID: org.ID}}
	require.NoError(t, vehicles.Create(ctx, van))

	ts, err := models.ParseLocalDateTime("2023-04-01T08:30")
	require.NoError(t, err)
	for _, km := range []int64{120, 80} {
		km := km
		require.NoError(t, distances.Create(ctx, &models.Distance{Kilometres: &km, Vehicle: &models.Vehicle{ID: van.ID}, Timestamp: &ts}))
	}

	stored, err := vehicles.FindByID(ctx, van.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, stored.Organisation.ID)

	count, err := vehicles.CountByOrganisation(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	totals, err := distances.TotalsByVehicle(ctx, van.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), totals.Kilometres)
	assert.Equal(t, int64(2), totals.Records)

	logbook, err := distances.ListByVehicle(ctx, van.ID)
	require.NoError(t, err)
	require.Len(t, logbook, 2)
	assert.Equal(t, "2023-04-01T08:30", logbook[0].Timestamp.String())

	require.NoError(t, distances.Delete(ctx, logbook[0].ID))
	assert.ErrorIs(t, distances.Delete(ctx, logbook[0].ID), sql.ErrNoRows)
}
