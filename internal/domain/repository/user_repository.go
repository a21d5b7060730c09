// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// Uniqueness of username and email is ultimately enforced by the storage layer
// (unique indexes); service-level lookups before a write are fast-path pre-checks
// only, and implementations translate write-time constraint violations into the
// domain's conflict errors.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email. The match is case-insensitive.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// DeleteByID permanently removes a user. Returns ErrUserNotFound when
	// no row was deleted. There is no soft delete.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// FindByRole lists all users holding the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Search lists users whose email, username, first or last name contains
	// the term, case-insensitively.
	Search(ctx context.Context, term string) ([]*entity.User, error)
}
