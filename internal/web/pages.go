package web

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

type vehicleSummaries interface {
	Summary(ctx context.Context, id int64) (*models.VehicleSummary, error)
}

// ListOptions builds select choices from the first page of an entity listing.
func ListOptions[R any](svc entityService[R], idOf func(*R) int64, label func(*R) string) OptionSource {
	return func(ctx context.Context) ([]Option, error) {
		items, _, err := svc.List(ctx, models.ListFilter{Page: 1, PageSize: 100})
		if err != nil {
			return nil, err
		}
		options := make([]Option, 0, len(items))
		for i := range items {
			id := idOf(&items[i])
			options = append(options, Option{
				Value: strconv.FormatInt(id, 10),
				Label: fmt.Sprintf("#%d %s", id, label(&items[i])),
			})
		}
		return options, nil
	}
}

// OrganisationPages builds the organisation section.
func OrganisationPages(svc entityService[models.Organisation]) *EntityPages[models.Organisation] {
	return &EntityPages[models.Organisation]{
		Entity:  "organisation",
		Plural:  "organisations",
		Title:   "Organisations",
		Service: svc,
		IDOf:    func(o *models.Organisation) int64 { return o.ID },
		Fields: []Field[models.Organisation]{
			{Name: "name", Label: "Name", Input: InputText, Required: true, Value: func(o *models.Organisation) string { return o.Name }},
			{Name: "description", Label: "Description", Input: InputTextArea, Value: func(o *models.Organisation) string { return text(o.Description) }},
		},
	}
}

// VehiclePages builds the vehicle section. Details pages show driven
// kilometres and fuel totals.
func VehiclePages(svc entityService[models.Vehicle], organisations OptionSource, summaries vehicleSummaries) *EntityPages[models.Vehicle] {
	pages := &EntityPages[models.Vehicle]{
		Entity:  "vehicle",
		Plural:  "vehicles",
		Title:   "Vehicles",
		Service: svc,
		IDOf:    func(v *models.Vehicle) int64 { return v.ID },
		Fields: []Field[models.Vehicle]{
			{Name: "name", Label: "Name", Input: InputText, Required: true, Value: func(v *models.Vehicle) string { return v.Name }},
			{Name: "producer", Label: "Producer", Input: InputText, Value: func(v *models.Vehicle) string { return text(v.Producer) }},
			{Name: "model", Label: "Model", Input: InputText, Value: func(v *models.Vehicle) string { return text(v.Model) }},
			{Name: "registration_number", Label: "Registration", Input: InputText, Value: func(v *models.Vehicle) string { return text(v.RegistrationNumber) }},
			{Name: "production_year", Label: "Year", Input: InputNumber, Value: func(v *models.Vehicle) string { return integer(v.ProductionYear) }},
			{Name: "organisation", Label: "Organisation", Input: InputSelect, Options: organisations, Value: func(v *models.Vehicle) string { return reference(v.OrganisationID()) }},
			{Name: "description", Label: "Description", Input: InputTextArea, Value: func(v *models.Vehicle) string { return text(v.Description) }},
		},
	}
	if summaries != nil {
		pages.Extra = func(ctx context.Context, v *models.Vehicle) ([]Detail, error) {
			summary, err := summaries.Summary(ctx, v.ID)
			if err != nil {
				return nil, err
			}
			return []Detail{
				{Label: "Kilometres driven", Value: strconv.FormatInt(summary.TotalKilometres, 10)},
				{Label: "Distance records", Value: strconv.FormatInt(summary.DistanceRecords, 10)},
				{Label: "Fuel", Value: strconv.FormatFloat(summary.TotalFuel, 'f', 2, 64)},
				{Label: "Fuel cost", Value: strconv.FormatFloat(summary.TotalFuelCost, 'f', 2, 64)},
				{Label: "Refuel records", Value: strconv.FormatInt(summary.RefuelRecords, 10)},
			}, nil
		}
	}
	return pages
}

// DistancePages builds the distance section.
func DistancePages(svc entityService[models.Distance], vehicles OptionSource) *EntityPages[models.Distance] {
	return &EntityPages[models.Distance]{
		Entity:  "distance",
		Plural:  "distances",
		Title:   "Distances",
		Service: svc,
		IDOf:    func(d *models.Distance) int64 { return d.ID },
		Fields: []Field[models.Distance]{
			{Name: "kilometres", Label: "Kilometres", Input: InputNumber, Required: true, Value: func(d *models.Distance) string { return integer(d.Kilometres) }},
			{Name: "vehicle", Label: "Vehicle", Input: InputSelect, Required: true, Options: vehicles, Value: func(d *models.Distance) string { return vehicleRef(d.Vehicle) }},
			{Name: "timestamp", Label: "Timestamp", Input: InputDateTime, Value: func(d *models.Distance) string { return timestamp(d.Timestamp) }},
			{Name: "description", Label: "Description", Input: InputTextArea, Value: func(d *models.Distance) string { return text(d.Description) }},
		},
	}
}

// RefuelPages builds the refuel section.
func RefuelPages(svc entityService[models.Refuel], vehicles OptionSource) *EntityPages[models.Refuel] {
	return &EntityPages[models.Refuel]{
		Entity:  "refuel",
		Plural:  "refuels",
		Title:   "Refuels",
		Service: svc,
		IDOf:    func(r *models.Refuel) int64 { return r.ID },
		Fields: []Field[models.Refuel]{
			{Name: "location", Label: "Location", Input: InputText, Value: func(r *models.Refuel) string { return text(r.Location) }},
			{Name: "fuel_name", Label: "Fuel", Input: InputText, Value: func(r *models.Refuel) string { return text(r.FuelName) }},
			{Name: "refuel_amount", Label: "Amount", Input: InputNumber, Value: func(r *models.Refuel) string { return decimal(r.RefuelAmount) }},
			{Name: "price", Label: "Price", Input: InputNumber, Value: func(r *models.Refuel) string { return decimal(r.Price) }},
			{Name: "vehicle", Label: "Vehicle", Input: InputSelect, Required: true, Options: vehicles, Value: func(r *models.Refuel) string { return vehicleRef(r.Vehicle) }},
			{Name: "timestamp", Label: "Timestamp", Input: InputDateTime, Value: func(r *models.Refuel) string { return timestamp(r.Timestamp) }},
			{Name: "description", Label: "Description", Input: InputTextArea, Value: func(r *models.Refuel) string { return text(r.Description) }},
		},
	}
}

func text(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func integer(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func decimal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func timestamp(v *models.LocalDateTime) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func reference(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func vehicleRef(v *models.Vehicle) string {
	if v == nil || v.ID == 0 {
		return ""
	}
	return strconv.FormatInt(v.ID, 10)
}
