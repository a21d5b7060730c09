package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrative account queries.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// userStats counts accounts per role.
type userStats struct {
	Users  int64 `json:"users"`
	Admins int64 `json:"admins"`
}

// ListUsers lists users holding the role given by the "role" query
// parameter (default "user").
func (h *AdminHandler) ListUsers(c echo.Context) error {
	roleParam := c.QueryParam("role")
	if roleParam == "" {
		roleParam = entity.RoleUser.String()
	}

	role := entity.Role(roleParam)
	if !role.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown role: "+roleParam)
	}

	users, err := h.adminUC.ListUsersByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// SearchUsers lists users matching the "q" query parameter.
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Search term is required")
	}

	users, err := h.adminUC.SearchUsers(c.Request().Context(), term)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// UserStats returns account counts per role.
func (h *AdminHandler) UserStats(c echo.Context) error {
	ctx := c.Request().Context()

	userCount, err := h.adminUC.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		return errors.WithStack(err)
	}

	adminCount, err := h.adminUC.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userStats{
		Users:  userCount,
		Admins: adminCount,
	}, "User statistics retrieved successfully")
}
