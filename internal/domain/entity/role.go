// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the kind of account taking part in a blood request.
type Role string

const (
	// RoleDonor indicates an account that can give blood and accept requests.
	RoleDonor Role = "donor"
	// RolePatient indicates an account that raises requests.
	RolePatient Role = "patient"
	// RoleHospital indicates a facility that verifies donations.
	RoleHospital Role = "hospital"
	// RoleAdmin is accepted on input but grants nothing extra.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RolePatient, RoleHospital, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a raw role string, returning false for unknown roles.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}
