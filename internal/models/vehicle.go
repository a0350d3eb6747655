package models

import "time"

// Vehicle is a fleet member. Organisation is embedded as a reference; only
// its id is persisted.
type Vehicle struct {
	ID                 int64         `db:"id" json:"id"`
	Name               string        `db:"name" json:"name,omitempty" validate:"required,max=255"`
	Producer           *string       `db:"producer" json:"producer,omitempty"`
	Model              *string       `db:"model" json:"model,omitempty"`
	RegistrationNumber *string       `db:"registration_number" json:"registration_number,omitempty" validate:"omitempty,max=32"`
	ProductionYear     *int64        `db:"production_year" json:"production_year,omitempty" validate:"omitempty,gte=1886,lte=2200"`
	Description        *string       `db:"description" json:"description,omitempty"`
	Organisation       *Organisation `db:"-" json:"organisation,omitempty" validate:"-"`
	CreatedAt          *time.Time    `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt          *time.Time    `db:"updated_at" json:"updated_at,omitempty"`
}

// Clone returns a copy sharing no pointers with v.
func (v Vehicle) Clone() Vehicle {
	v.Producer = clonePtr(v.Producer)
	v.Model = clonePtr(v.Model)
	v.RegistrationNumber = clonePtr(v.RegistrationNumber)
	v.ProductionYear = clonePtr(v.ProductionYear)
	v.Description = clonePtr(v.Description)
	if v.Organisation != nil {
		org := v.Organisation.Clone()
		v.Organisation = &org
	}
	v.CreatedAt = clonePtr(v.CreatedAt)
	v.UpdatedAt = clonePtr(v.UpdatedAt)
	return v
}

// OrganisationID returns the referenced organisation id or nil.
func (v Vehicle) OrganisationID() *int64 {
	if v.Organisation == nil || v.Organisation.ID == 0 {
		return nil
	}
	id := v.Organisation.ID
	return &id
}

// VehicleSummary aggregates the logbook of one vehicle.
type VehicleSummary struct {
	VehicleID       int64     `json:"vehicle_id" db:"vehicle_id"`
	TotalKilometres int64     `json:"total_kilometres" db:"total_kilometres"`
	DistanceRecords int64     `json:"distance_records" db:"distance_records"`
	TotalFuel       float64   `json:"total_fuel" db:"total_fuel"`
	TotalFuelCost   float64   `json:"total_fuel_cost" db:"total_fuel_cost"`
	RefuelRecords   int64     `json:"refuel_records" db:"refuel_records"`
	GeneratedAt     time.Time `json:"generated_at" db:"-"`
}
