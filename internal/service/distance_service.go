package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

type distanceRepository interface {
	EntityStore[models.Distance]
	entityLister[models.Distance]
}

type vehicleFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Vehicle, error)
}

func distanceID(d *models.Distance) int64       { return d.ID }
func setDistanceID(d *models.Distance, id int64) { d.ID = id }
func distanceVehicleID(d *models.Distance) int64 { return d.VehicleID() }

// DistanceFields builds the field registry of distance records.
func DistanceFields() *FieldRegistry[models.Distance] {
	return NewFieldRegistry(models.Distance.Clone).
		Register("kilometres", Integer(func(d *models.Distance) **int64 { return &d.Kilometres })).
		Register("vehicle", Reference(func(d *models.Distance) **models.Vehicle { return &d.Vehicle })).
		Register("description", NullableText(func(d *models.Distance) **string { return &d.Description })).
		Register("timestamp", Timestamp(func(d *models.Distance) **models.LocalDateTime { return &d.Timestamp }))
}

// DistanceRules builds the validation rules of distance records.
func DistanceRules(v *validator.Validate, repo distanceRepository, vehicles vehicleFinder) RuleSet[models.Distance] {
	tags := StructTags[models.Distance](v)
	vehicle := ReferenceExists("vehicle", distanceVehicleID, ExistsVia(vehicles.FindByID), true)
	update := []Rule[models.Distance]{
		IDPresent(distanceID),
		RecordExists("distance", distanceID, ExistsVia(repo.FindByID)),
		tags,
		vehicle,
	}
	return RuleSet[models.Distance]{
		Create:        []Rule[models.Distance]{IDAbsent("distance", distanceID), tags, vehicle},
		Replace:       update,
		PartialUpdate: update,
		Delete:        []Rule[models.Distance]{IDPresent(distanceID)},
	}
}

// NewDistanceService wires the distance engine.
func NewDistanceService(repo distanceRepository, vehicles vehicleFinder, summary *SummaryService, deps ServiceDeps) *CrudService[models.Distance] {
	engine := NewEngine(EngineConfig[models.Distance]{
		Entity:  "distance",
		Store:   repo,
		Fields:  DistanceFields(),
		Rules:   DistanceRules(deps.validate(), repo, vehicles),
		Audit:   deps.Audit,
		IDOf:    distanceID,
		SetID:   setDistanceID,
		Metrics: deps.Metrics,
		Hooks:   []CommitHook[models.Distance]{SummaryInvalidation(summary, distanceVehicleID)},
		Logger:  deps.Logger,
	})
	return &CrudService[models.Distance]{Engine: engine, lister: repo}
}
