package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// AdminUsecase defines administrative read-only queries over accounts.
// The delivery layer guards these behind the admin role.
type AdminUsecase interface {
	// ListUsersByRole lists the public view of all users holding a role.
	ListUsersByRole(ctx context.Context, role entity.Role) ([]*entity.PublicUser, error)

	// SearchUsers lists the public view of users whose email, username,
	// first or last name contains the term, case-insensitively.
	SearchUsers(ctx context.Context, term string) ([]*entity.PublicUser, error)

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
