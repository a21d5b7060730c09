// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
	Phone     string `json:"phone" validate:"max=30"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthResult returns the authenticated user's public identity.
// Token issuance is the delivery layer's concern, not the core's.
type AuthResult struct {
	User *entity.PublicUser
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account. Email and username conflicts are
	// reported distinctly (ErrEmailTaken / ErrUsernameTaken).
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login verifies credentials by email. An unknown email and a wrong
	// password both yield ErrInvalidCredentials so account existence is
	// never leaked.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
}
