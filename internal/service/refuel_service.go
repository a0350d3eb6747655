package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

type refuelRepository interface {
	EntityStore[models.Refuel]
	entityLister[models.Refuel]
}

func refuelID(r *models.Refuel) int64       { return r.ID }
func setRefuelID(r *models.Refuel, id int64) { r.ID = id }
func refuelVehicleID(r *models.Refuel) int64 { return r.VehicleID() }

// RefuelFields builds the field registry of refuel records.
func RefuelFields() *FieldRegistry[models.Refuel] {
	return NewFieldRegistry(models.Refuel.Clone).
		Register("location", NullableText(func(r *models.Refuel) **string { return &r.Location })).
		Register("fuel_name", NullableText(func(r *models.Refuel) **string { return &r.FuelName })).
		Register("refuel_amount", Decimal(func(r *models.Refuel) **float64 { return &r.RefuelAmount })).
		Register("price", Decimal(func(r *models.Refuel) **float64 { return &r.Price })).
		Register("vehicle", Reference(func(r *models.Refuel) **models.Vehicle { return &r.Vehicle })).
		Register("description", NullableText(func(r *models.Refuel) **string { return &r.Description })).
		Register("timestamp", Timestamp(func(r *models.Refuel) **models.LocalDateTime { return &r.Timestamp }))
}

// RefuelRules builds the validation rules of refuel records.
func RefuelRules(v *validator.Validate, repo refuelRepository, vehicles vehicleFinder) RuleSet[models.Refuel] {
	tags := StructTags[models.Refuel](v)
	vehicle := ReferenceExists("vehicle", refuelVehicleID, ExistsVia(vehicles.FindByID), true)
	update := []Rule[models.Refuel]{
		IDPresent(refuelID),
		RecordExists("refuel", refuelID, ExistsVia(repo.FindByID)),
		tags,
		vehicle,
	}
	return RuleSet[models.Refuel]{
		Create:        []Rule[models.Refuel]{IDAbsent("refuel", refuelID), tags, vehicle},
		Replace:       update,
		PartialUpdate: update,
		Delete:        []Rule[models.Refuel]{IDPresent(refuelID)},
	}
}

// NewRefuelService wires the refuel engine.
func NewRefuelService(repo refuelRepository, vehicles vehicleFinder, summary *SummaryService, deps ServiceDeps) *CrudService[models.Refuel] {
	engine := NewEngine(EngineConfig[models.Refuel]{
		Entity:  "refuel",
		Store:   repo,
		Fields:  RefuelFields(),
		Rules:   RefuelRules(deps.validate(), repo, vehicles),
		Audit:   deps.Audit,
		IDOf:    refuelID,
		SetID:   setRefuelID,
		Metrics: deps.Metrics,
		Hooks:   []CommitHook[models.Refuel]{SummaryInvalidation(summary, refuelVehicleID)},
		Logger:  deps.Logger,
	})
	return &CrudService[models.Refuel]{Engine: engine, lister: repo}
}
