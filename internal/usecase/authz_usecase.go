package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthzUsecase resolves the authenticated principal into a stored user.
// It is the single seam between the token middleware at the boundary and
// the core operations, which receive the resolved user ID explicitly.
type AuthzUsecase interface {
	// ResolveCurrentUser maps a principal (the account email carried in the
	// token subject) to the user's ID. An empty principal or one that no
	// longer matches a stored user fails with ErrUnauthenticated.
	ResolveCurrentUser(ctx context.Context, principal string) (uuid.UUID, error)
}
