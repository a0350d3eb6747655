package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

type vehicleRepository interface {
	EntityStore[models.Vehicle]
	entityLister[models.Vehicle]
}

type organisationFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Organisation, error)
}

type recordCounter interface {
	CountByVehicle(ctx context.Context, vehicleID int64) (int, error)
}

func vehicleID(v *models.Vehicle) int64       { return v.ID }
func setVehicleID(v *models.Vehicle, id int64) { v.ID = id }

func vehicleOrganisationID(v *models.Vehicle) int64 {
	if v.Organisation == nil {
		return 0
	}
	return v.Organisation.ID
}

// VehicleFields builds the field registry of vehicles.
func VehicleFields() *FieldRegistry[models.Vehicle] {
	return NewFieldRegistry(models.Vehicle.Clone).
		Register("name", Text(func(v *models.Vehicle) *string { return &v.Name })).
		Register("producer", NullableText(func(v *models.Vehicle) **string { return &v.Producer })).
		Register("model", NullableText(func(v *models.Vehicle) **string { return &v.Model })).
		Register("registration_number", NullableText(func(v *models.Vehicle) **string { return &v.RegistrationNumber })).
		Register("production_year", Integer(func(v *models.Vehicle) **int64 { return &v.ProductionYear })).
		Register("description", NullableText(func(v *models.Vehicle) **string { return &v.Description })).
		Register("organisation", Reference(func(v *models.Vehicle) **models.Organisation { return &v.Organisation }))
}

// VehicleRules builds the validation rules of vehicles.
func VehicleRules(v *validator.Validate, repo vehicleRepository, organisations organisationFinder, distances, refuels recordCounter) RuleSet[models.Vehicle] {
	tags := StructTags[models.Vehicle](v)
	organisation := ReferenceExists("organisation", vehicleOrganisationID, ExistsVia(organisations.FindByID), false)
	update := []Rule[models.Vehicle]{
		IDPresent(vehicleID),
		RecordExists("vehicle", vehicleID, ExistsVia(repo.FindByID)),
		tags,
		organisation,
	}
	return RuleSet[models.Vehicle]{
		Create:        []Rule[models.Vehicle]{IDAbsent("vehicle", vehicleID), tags, organisation},
		Replace:       update,
		PartialUpdate: update,
		Delete: []Rule[models.Vehicle]{
			NoDependents("vehicle", "distance records", vehicleID, distances.CountByVehicle),
			NoDependents("vehicle", "refuel records", vehicleID, refuels.CountByVehicle),
		},
	}
}

// NewVehicleService wires the vehicle engine. Summary entries of deleted or
// replaced vehicles are dropped after commit.
func NewVehicleService(repo vehicleRepository, organisations organisationFinder, distances, refuels recordCounter, summary *SummaryService, deps ServiceDeps) *CrudService[models.Vehicle] {
	engine := NewEngine(EngineConfig[models.Vehicle]{
		Entity:  "vehicle",
		Store:   repo,
		Fields:  VehicleFields(),
		Rules:   VehicleRules(deps.validate(), repo, organisations, distances, refuels),
		Audit:   deps.Audit,
		IDOf:    vehicleID,
		SetID:   setVehicleID,
		Metrics: deps.Metrics,
		Hooks:   []CommitHook[models.Vehicle]{SummaryInvalidation(summary, vehicleID)},
		Logger:  deps.Logger,
	})
	return &CrudService[models.Vehicle]{Engine: engine, lister: repo}
}
