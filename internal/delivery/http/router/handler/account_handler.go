// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for registration and login handlers.
// Token minting lives here, at the boundary; the account usecase returns
// only the public identity.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// authResponse is the response body for register and login.
type authResponse struct {
	User         *entity.PublicUser `json:"user"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
}

// refreshInput is the request body for the token refresh endpoint.
type refreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// refreshResponse returns the re-minted access token. The refresh token
// stays unchanged.
type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	accessToken, refreshToken, err := h.tokenSvc.GenerateTokens(output.User.Email, output.User.Role.String())
	if err != nil {
		return errors.Wrap(err, "failed to generate tokens after registration")
	}

	return response.Success(c, http.StatusCreated, authResponse{
		User:         output.User,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "User registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	accessToken, refreshToken, err := h.tokenSvc.GenerateTokens(output.User.Email, output.User.Role.String())
	if err != nil {
		return errors.Wrap(err, "failed to generate tokens after login")
	}

	return response.Success(c, http.StatusOK, authResponse{
		User:         output.User,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Login successful")
}

// Refresh mints a new access token from a valid refresh token.
// The refresh token remains unchanged; there is no server-side session state.
func (h *AccountHandler) Refresh(c echo.Context) error {
	input := new(refreshInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	claims, err := h.tokenSvc.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired refresh token")
	}

	accessToken, _, err := h.tokenSvc.GenerateTokens(claims.Principal, claims.Role)
	if err != nil {
		return errors.Wrap(err, "failed to generate new access token")
	}

	return response.Success(c, http.StatusOK, refreshResponse{AccessToken: accessToken}, "Token refreshed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
