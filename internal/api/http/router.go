package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xmikiesx/usage-metrics-api/internal/api/http/handlers"
	"github.com/xmikiesx/usage-metrics-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Auth           *handlers.AuthHandler
	Metrics        *handlers.MetricsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)

	app.Post("/users", cfg.Users.Create)
	app.Get("/users", cfg.AuthMiddleware.Handle, cfg.Users.List)
	app.Get("/users/:id", cfg.AuthMiddleware.Handle, cfg.Users.GetByID)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.Profile)

	app.Get("/metrics", cfg.Metrics.Get)
}
