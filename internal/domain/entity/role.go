// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role. Assigned by default at registration.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, falling back to RoleUser
// for unknown values so that a corrupt row never grants elevated access.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
