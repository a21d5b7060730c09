// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// Username and Email are unique across all users; Email lookups are
// case-insensitive at the store boundary.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user, assigned at creation.
	Username     string    // Unique display handle chosen at registration.
	Email        string    // The user's primary contact email, used as the login identifier.
	PasswordHash string    // Bcrypt-hashed credential. Never serialized outward; see PublicUser.
	FirstName    string    // Free-form profile attribute.
	LastName     string    // Free-form profile attribute.
	Phone        string    // Free-form profile attribute.
	Role         Role      // Access-level tag. Not mutable through profile flows.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
