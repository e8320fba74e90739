// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		// Reset requires a valid token but intentionally matches the email in
		// the body, not the token subject.
		userGroup.PUT("/reset-password", r.userHandler.ResetPassword, r.authMiddleware.Authenticate)
	}

	// Task routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		apiGroup.GET("/tasks", r.taskHandler.List)
		apiGroup.POST("/tasks", r.taskHandler.Create)
		apiGroup.GET("/tasks/:id", r.taskHandler.Get)
		apiGroup.PUT("/tasks/:id", r.taskHandler.Update)
		apiGroup.DELETE("/tasks/:id", r.taskHandler.Delete)
	}
}
