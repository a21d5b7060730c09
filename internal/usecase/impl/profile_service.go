package impl

import (
	"context"
	"log/slog"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPasswordMinLength = 8

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	passwordMinLength int
	logger            *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService. It receives all dependencies as interfaces.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	passwordMinLength := defaultPasswordMinLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordMinLength > 0 {
		passwordMinLength = params.Config.Auth.PasswordMinLength
	}

	return &profileService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		passwordMinLength: passwordMinLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the full user entity. Masking is the delivery layer's job.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	// Single read, no transaction needed.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile overwrites the editable profile fields within one transaction.
// Moving to a username or email held by another user conflicts; keeping a
// field's current value never does.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile not found")
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		if err := srv.checkUsernameOwnership(ctx, userRepo, userID, input.Username); err != nil {
			return err
		}
		if err := srv.checkEmailOwnership(ctx, userRepo, userID, input.Email); err != nil {
			return err
		}

		// Role and password hash are never touched by a profile update.
		user.Username = input.Username
		user.Email = input.Email
		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Phone = input.Phone

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updatedUser, nil
}

// ChangePassword verifies the current password, checks the confirmation and
// minimum length, then stores the new hash.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user not found for password change")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.Any("userID", userID))

		return domainerrors.ErrInvalidCredentials.WrapMessage("current password mismatch")
	}

	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WrapMessage("password confirmation mismatch")
	}

	if len(input.NewPassword) < srv.passwordMinLength {
		return domainerrors.ErrPasswordTooShort.WrapMessage("new password below minimum length")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Debug("Password changed", slog.Any("userID", userID))

	return nil
}

// DeleteUser permanently removes the account. There is no soft delete.
func (srv *profileService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to check user existence before deletion")
		}
		if !exists {
			return domainerrors.ErrUserNotFound.WrapMessage("user not found for deletion")
		}

		if err := userRepo.DeleteByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found for deletion")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

func (srv *profileService) checkUsernameOwnership(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID, username string) error {
	holder, err := userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check username ownership")
	}

	if holder.ID != userID {
		return domainerrors.ErrUsernameTaken.WrapMessage("username held by another user")
	}

	return nil
}

func (srv *profileService) checkEmailOwnership(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID, email string) error {
	holder, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check email ownership")
	}

	if holder.ID != userID {
		return domainerrors.ErrEmailTaken.WrapMessage("email held by another user")
	}

	return nil
}
