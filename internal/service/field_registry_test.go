package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

func TestParseInteger(t *testing.T) {
	cases := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: `120`, want: 120},
		{raw: `"120"`, want: 120},
		{raw: `" 7 "`, want: 7},
		{raw: `-3`, want: -3},
		{raw: `"abc"`, wantErr: true},
		{raw: `1.5`, wantErr: true},
		{raw: `true`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseInteger(json.RawMessage(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyDoesNotModifySnapshot(t *testing.T) {
	registry := RefuelFields()
	snapshot := models.Refuel{
		ID:           4,
		Location:     stringPtr("Helsinki"),
		RefuelAmount: float64Ptr(40.5),
		Vehicle:      &models.Vehicle{ID: 1},
	}

	updated, err := registry.Apply(snapshot, ChangeSet{
		"location":      json.RawMessage(`null`),
		"refuel_amount": json.RawMessage(`"12.25"`),
		"price":         json.RawMessage(`30`),
		"vehicle":       json.RawMessage(`{"id": 2}`),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.Location)
	assert.Equal(t, 12.25, *updated.RefuelAmount)
	assert.Equal(t, 30.0, *updated.Price)
	assert.Equal(t, int64(2), updated.VehicleID())

	assert.Equal(t, "Helsinki", *snapshot.Location)
	assert.Equal(t, 40.5, *snapshot.RefuelAmount)
	assert.Nil(t, snapshot.Price)
	assert.Equal(t, int64(1), snapshot.VehicleID())
}

func TestApplyReportsFirstFailingFieldInNameOrder(t *testing.T) {
	registry := RefuelFields()

	_, err := registry.Apply(models.Refuel{}, ChangeSet{
		"refuel_amount": json.RawMessage(`"lots"`),
		"price":         json.RawMessage(`"free"`),
	})

	var coercion *CoercionError
	require.True(t, errors.As(err, &coercion))
	assert.Equal(t, "price", coercion.Field)
	assert.Equal(t, "field 'price': decimal value 'free' could not be parsed", err.Error())
}

func TestApplySkipsUnknownFields(t *testing.T) {
	registry := OrganisationFields()

	updated, err := registry.Apply(models.Organisation{Name: "Fleet"}, ChangeSet{"colour": json.RawMessage(`"red"`)})

	require.NoError(t, err)
	assert.Equal(t, "Fleet", updated.Name)
}

func TestTimestampSetter(t *testing.T) {
	registry := DistanceFields()

	updated, err := registry.Apply(models.Distance{}, ChangeSet{"timestamp": json.RawMessage(`"2024-06-01T17:45"`)})
	require.NoError(t, err)
	require.NotNil(t, updated.Timestamp)
	assert.Equal(t, "2024-06-01T17:45", updated.Timestamp.String())

	_, err = registry.Apply(models.Distance{}, ChangeSet{"timestamp": json.RawMessage(`"yesterday"`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'timestamp'")
}

func TestReferenceSetterRejectsGarbage(t *testing.T) {
	registry := DistanceFields()

	_, err := registry.Apply(models.Distance{}, ChangeSet{"vehicle": json.RawMessage(`"not json"`)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'vehicle'")
}

func TestFieldsAreSorted(t *testing.T) {
	assert.Equal(t, []string{"description", "kilometres", "timestamp", "vehicle"}, DistanceFields().Fields())
}
