package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

type organisationRepository interface {
	EntityStore[models.Organisation]
	entityLister[models.Organisation]
}

type vehicleCounter interface {
	CountByOrganisation(ctx context.Context, organisationID int64) (int, error)
}

func organisationID(o *models.Organisation) int64       { return o.ID }
func setOrganisationID(o *models.Organisation, id int64) { o.ID = id }

// OrganisationFields builds the field registry of organisations.
func OrganisationFields() *FieldRegistry[models.Organisation] {
	return NewFieldRegistry(models.Organisation.Clone).
		Register("name", Text(func(o *models.Organisation) *string { return &o.Name })).
		Register("description", NullableText(func(o *models.Organisation) **string { return &o.Description }))
}

// OrganisationRules builds the validation rules of organisations.
func OrganisationRules(v *validator.Validate, repo organisationRepository, vehicles vehicleCounter) RuleSet[models.Organisation] {
	tags := StructTags[models.Organisation](v)
	exists := RecordExists("organisation", organisationID, ExistsVia(repo.FindByID))
	update := []Rule[models.Organisation]{IDPresent(organisationID), exists, tags}
	return RuleSet[models.Organisation]{
		Create:        []Rule[models.Organisation]{IDAbsent("organisation", organisationID), tags},
		Replace:       update,
		PartialUpdate: update,
		Delete: []Rule[models.Organisation]{
			NoDependents("organisation", "vehicles", organisationID, vehicles.CountByOrganisation),
		},
	}
}

// NewOrganisationService wires the organisation engine.
func NewOrganisationService(repo organisationRepository, vehicles vehicleCounter, deps ServiceDeps) *CrudService[models.Organisation] {
	engine := NewEngine(EngineConfig[models.Organisation]{
		Entity:  "organisation",
		Store:   repo,
		Fields:  OrganisationFields(),
		Rules:   OrganisationRules(deps.validate(), repo, vehicles),
		Audit:   deps.Audit,
		IDOf:    organisationID,
		SetID:   setOrganisationID,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
	return &CrudService[models.Organisation]{Engine: engine, lister: repo}
}
