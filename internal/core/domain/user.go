package domain

import (
	"strings"
	"time"
)

// Role identifies which portal an account belongs to. It is fixed at
// registration.
type Role string

const (
	RolePatient  Role = "patient"
	RoleProvider Role = "provider"
	RolePayor    Role = "payor"
)

// Roles lists every valid role in display order.
var Roles = []Role{RolePatient, RoleProvider, RolePayor}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleProvider, RolePayor:
		return true
	}
	return false
}

// Profile holds role specific attributes. Values are whatever the client sent
// (strings, numbers, booleans, nested objects).
type Profile map[string]any

// Merge returns a new profile with the keys of update written over p.
// Nested values are replaced, not merged.
func (p Profile) Merge(update Profile) Profile {
	out := make(Profile, len(p)+len(update))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

// User is a portal account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Profile      Profile
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the subset of a user the authorization layer needs.
type Identity struct {
	ID       string
	Role     Role
	IsActive bool
}

// Identity returns the request identity for u.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role, IsActive: u.IsActive}
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique
// index are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
