// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Pre-checks report the conflict distinctly. The unique indexes remain
		// the authoritative guard; a concurrent insert surfaces as the same
		// conflict error from Create.
		if err := srv.checkEmailAvailable(ctx, userRepo, input.Email); err != nil {
			return err
		}
		if err := srv.checkUsernameAvailable(ctx, userRepo, input.Username); err != nil {
			return err
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Phone:        input.Phone,
			Role:         entity.RoleUser,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.AuthResult{User: entity.NewPublicUser(registeredUser)}, nil
}

// Login verifies credentials by email. An unknown email and a wrong password
// both fail with ErrInvalidCredentials so account existence is never leaked.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	// Single read, no transaction needed.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email during login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthResult{User: entity.NewPublicUser(user)}, nil
}

func (srv *accountService) checkEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

func (srv *accountService) checkUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}
