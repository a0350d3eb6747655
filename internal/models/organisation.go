package models

import "time"

// Organisation owns a fleet of vehicles.
type Organisation struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name,omitempty" validate:"required,max=255"`
	Description *string    `db:"description" json:"description,omitempty"`
	CreatedAt   *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// Clone returns a copy sharing no pointers with o.
func (o Organisation) Clone() Organisation {
	o.Description = clonePtr(o.Description)
	o.CreatedAt = clonePtr(o.CreatedAt)
	o.UpdatedAt = clonePtr(o.UpdatedAt)
	return o
}
