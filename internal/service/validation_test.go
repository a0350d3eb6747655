package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

func TestRuleSetStopsAtFirstViolation(t *testing.T) {
	var evaluated []string
	rule := func(name string, err error) Rule[models.Organisation] {
		return func(context.Context, *models.Organisation) error {
			evaluated = append(evaluated, name)
			return err
		}
	}
	rules := RuleSet[models.Organisation]{
		Create: []Rule[models.Organisation]{
			rule("first", nil),
			rule("second", Violation("name %s is taken", "Fleet")),
			rule("third", nil),
		},
	}

	outcome, err := rules.Validate(context.Background(), &models.Organisation{}, MutationCreate)

	require.NoError(t, err)
	assert.False(t, outcome.Valid)
	assert.Equal(t, "name Fleet is taken", outcome.Message)
	assert.Equal(t, []string{"first", "second"}, evaluated)
}

func TestRuleSetSurfacesInfrastructureErrors(t *testing.T) {
	rules := RuleSet[models.Organisation]{
		Delete: []Rule[models.Organisation]{
			func(context.Context, *models.Organisation) error { return errors.New("connection reset") },
		},
	}

	_, err := rules.Validate(context.Background(), &models.Organisation{}, MutationDelete)

	assert.EqualError(t, err, "connection reset")
}

func TestEmptyContextIsValid(t *testing.T) {
	outcome, err := RuleSet[models.Organisation]{}.Validate(context.Background(), &models.Organisation{}, MutationPartialUpdate)

	require.NoError(t, err)
	assert.True(t, outcome.Valid)
	assert.Empty(t, outcome.Message)
}

func TestOrganisationRules(t *testing.T) {
	store := newMemoryStore(organisationID, setOrganisationID, models.Organisation.Clone)
	store.seed(models.Organisation{ID: 1, Name: "North"})
	rules := OrganisationRules(NewStructValidator(), store, dependentCounts{1: 3})
	ctx := context.Background()

	cases := []struct {
		name    string
		entity  models.Organisation
		mc      MutationContext
		valid   bool
		message string
	}{
		{name: "create ok", entity: models.Organisation{Name: "South"}, mc: MutationCreate, valid: true},
		{name: "create without name", entity: models.Organisation{}, mc: MutationCreate, message: "name is required"},
		{name: "create with id", entity: models.Organisation{ID: 5, Name: "x"}, mc: MutationCreate, message: "organisation ID must not be provided on create"},
		{name: "replace unknown", entity: models.Organisation{ID: 8, Name: "x"}, mc: MutationReplace, message: "organisation with ID: '8' does not exist"},
		{name: "patch ok", entity: models.Organisation{ID: 1, Name: "North"}, mc: MutationPartialUpdate, valid: true},
		{name: "delete with vehicles", entity: models.Organisation{ID: 1}, mc: MutationDelete, message: "organisation has 3 vehicles and cannot be deleted"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := rules.Validate(ctx, &tc.entity, tc.mc)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, outcome.Valid)
			assert.Equal(t, tc.message, outcome.Message)
		})
	}
}

func TestMutationContextString(t *testing.T) {
	assert.Equal(t, "create", MutationCreate.String())
	assert.Equal(t, "replace", MutationReplace.String())
	assert.Equal(t, "partial_update", MutationPartialUpdate.String())
	assert.Equal(t, "delete", MutationDelete.String())
}
