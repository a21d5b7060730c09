package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authzService implements the AuthzUsecase interface.
type authzService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthzServiceParams holds dependencies for authzService, injected by Fx.
type AuthzServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAuthzService is the constructor for authzService.
func NewAuthzService(params AuthzServiceParams) usecase.AuthzUsecase {
	return &authzService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authzService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveCurrentUser maps a token principal (the account email) to the stored
// user's ID. A token may outlive its account, so an unknown principal fails
// with ErrUnauthenticated rather than NotFound.
func (srv *authzService) ResolveCurrentUser(ctx context.Context, principal string) (uuid.UUID, error) {
	if principal == "" {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WrapMessage("empty principal")
	}

	user, err := srv.userRepo.FindByEmail(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Principal no longer resolves to a user", slog.String("principal", principal))

			return uuid.Nil, domainerrors.ErrUnauthenticated.WrapMessage("principal no longer resolves to a user")
		}

		return uuid.Nil, errors.Wrap(err, "failed to resolve current user")
	}

	return user.ID, nil
}
