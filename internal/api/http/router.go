package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobdesk/helpdesk-core/internal/api/http/handlers"
	"github.com/mobdesk/helpdesk-core/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Profile        *handlers.ProfileHandler
	Catalog        *handlers.CatalogHandler
	Metrics        *handlers.MetricsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Users.SignUp)
	authGroup.Post("/signin", cfg.Users.SignIn)
	authGroup.Post("/signout", cfg.AuthMiddleware.Handle, cfg.Users.SignOut)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	protected.Get("/tickets", cfg.Tickets.List)
	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Post("/tickets/:id/comments", cfg.Tickets.AddComment)
	protected.Patch("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	protected.Patch("/tickets/:id/priority", cfg.Tickets.UpdatePriority)

	protected.Get("/profile", cfg.Profile.Me)
	protected.Get("/profile/directory", cfg.Profile.Directory)
	protected.Get("/catalog", cfg.Catalog.Get)

	protected.Get("/metrics", auth.RequireAdmin(), cfg.Metrics.Get)
}
