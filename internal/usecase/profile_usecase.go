package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields. Role and password
// hash are never touched by a profile update.
type UpdateProfileInput struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
	Phone     string `json:"phone" validate:"max=30"`
}

// ChangePasswordInput defines the data required to change an account password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ProfileUsecase defines the interface for operations on the authenticated
// user's own account. The caller resolves the acting user's ID through
// AuthzUsecase and passes it explicitly.
type ProfileUsecase interface {
	// GetProfile loads the full user entity. Masking for display is the
	// delivery layer's job via entity.PublicUser.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile overwrites username, email, first name, last name and
	// phone. Moving to a username or email held by another user conflicts;
	// keeping a field's current value never does.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ChangePassword verifies the current password, checks the confirmation
	// and minimum length, then stores the new hash.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// DeleteUser permanently removes the account. There is no soft delete.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
