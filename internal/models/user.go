package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleUser              UserRole = "ROLE_USER"
	RoleOrganisationAdmin UserRole = "ROLE_ORGANISATION_ADMIN"
	RoleSystemAdmin       UserRole = "ROLE_SYSTEM_ADMIN"
)

// AdminRoles may mutate fleet records.
var AdminRoles = []UserRole{RoleOrganisationAdmin, RoleSystemAdmin}

// AllRoles may read fleet records.
var AllRoles = []UserRole{RoleUser, RoleOrganisationAdmin, RoleSystemAdmin}

// User represents an application user stored in the users table.
type User struct {
	ID             int64      `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	FullName       string     `db:"full_name" json:"full_name"`
	Role           UserRole   `db:"role" json:"role"`
	OrganisationID *int64     `db:"organisation_id" json:"organisation_id,omitempty"`
	Active         bool       `db:"active" json:"active"`
	LastLogin      *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
