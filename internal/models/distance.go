package models

// Distance records kilometres driven by a vehicle.
type Distance struct {
	ID          int64          `db:"id" json:"id"`
	Kilometres  *int64         `db:"kilometres" json:"kilometres" validate:"required,gte=0"`
	Vehicle     *Vehicle       `db:"-" json:"vehicle" validate:"-"`
	Description *string        `db:"description" json:"description" validate:"omitempty,max=1000"`
	Timestamp   *LocalDateTime `db:"timestamp" json:"timestamp"`
}

// Clone returns a copy sharing no pointers with d.
func (d Distance) Clone() Distance {
	d.Kilometres = clonePtr(d.Kilometres)
	if d.Vehicle != nil {
		v := d.Vehicle.Clone()
		d.Vehicle = &v
	}
	d.Description = clonePtr(d.Description)
	d.Timestamp = clonePtr(d.Timestamp)
	return d
}

// VehicleID returns the referenced vehicle id or 0.
func (d Distance) VehicleID() int64 {
	if d.Vehicle == nil {
		return 0
	}
	return d.Vehicle.ID
}
