// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"
	"passport/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.PUT("/password", r.profileHandler.ChangePassword)
		profileGroup.DELETE("", r.profileHandler.DeleteProfile)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                           // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String())) // Then, check for the role
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/search", r.adminHandler.SearchUsers)
		adminGroup.GET("/users/stats", r.adminHandler.UserStats)
	}
}
