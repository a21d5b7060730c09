package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsersByRole lists the public view of all users holding a role.
func (srv *adminService) ListUsersByRole(ctx context.Context, role entity.Role) ([]*entity.PublicUser, error) {
	srv.log(ctx).Debug("Listing users by role", slog.String("role", role.String()))

	users, err := srv.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	return entity.NewPublicUsers(users), nil
}

// SearchUsers lists the public view of users matching the search term.
func (srv *adminService) SearchUsers(ctx context.Context, term string) ([]*entity.PublicUser, error) {
	srv.log(ctx).Debug("Searching users", slog.String("term", term))

	users, err := srv.userRepo.Search(ctx, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return entity.NewPublicUsers(users), nil
}

// CountByRole returns the number of users holding the given role.
func (srv *adminService) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	count, err := srv.userRepo.CountByRole(ctx, role)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}
