package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the authenticated user's own
// account operations.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	authzUC   usecase.AuthzUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, authzUC usecase.AuthzUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		authzUC:   authzUC,
		logger:    logger,
	}
}

// currentUserID resolves the token principal set by the auth middleware into
// the acting user's ID.
func (h *ProfileHandler) currentUserID(c echo.Context) (uuid.UUID, error) {
	principal, _ := c.Get(middleware.ContextKeyPrincipal).(string)

	userID, err := h.authzUC.ResolveCurrentUser(c.Request().Context(), principal)
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	return userID, nil
}

// GetProfile returns the current user's public profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entity.NewPublicUser(user), "Profile retrieved successfully")
}

// UpdateProfile overwrites the current user's editable profile fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateProfileInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entity.NewPublicUser(user), "Profile updated successfully")
}

// ChangePassword changes the current user's password.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}

	input := new(usecase.ChangePasswordInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.profileUC.ChangePassword(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// DeleteProfile permanently deletes the current user's account.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.profileUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}
