package models

// Refuel records fuel bought for a vehicle.
type Refuel struct {
	ID           int64          `db:"id" json:"id"`
	Location     *string        `db:"location" json:"location" validate:"omitempty,max=255"`
	FuelName     *string        `db:"fuel_name" json:"fuel_name" validate:"omitempty,max=64"`
	RefuelAmount *float64       `db:"refuel_amount" json:"refuel_amount" validate:"omitempty,gte=0"`
	Price        *float64       `db:"price" json:"price" validate:"omitempty,gte=0"`
	Vehicle      *Vehicle       `db:"-" json:"vehicle" validate:"-"`
	Description  *string        `db:"description" json:"description" validate:"omitempty,max=1000"`
	Timestamp    *LocalDateTime `db:"timestamp" json:"timestamp"`
}

// Clone returns a copy sharing no pointers with r.
func (r Refuel) Clone() Refuel {
	r.Location = clonePtr(r.Location)
	r.FuelName = clonePtr(r.FuelName)
	r.RefuelAmount = clonePtr(r.RefuelAmount)
	r.Price = clonePtr(r.Price)
	if r.Vehicle != nil {
		v := r.Vehicle.Clone()
		r.Vehicle = &v
	}
	r.Description = clonePtr(r.Description)
	r.Timestamp = clonePtr(r.Timestamp)
	return r
}

// VehicleID returns the referenced vehicle id or 0.
func (r Refuel) VehicleID() int64 {
	if r.Vehicle == nil {
		return 0
	}
	return r.Vehicle.ID
}
