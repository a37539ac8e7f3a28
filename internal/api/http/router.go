package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/visitor-service/internal/api/http/handlers"
	"github.com/spec-kit/visitor-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Staff          *handlers.StaffHandler
	Visitors       *handlers.VisitorHandler
	AuthMiddleware *auth.AuthMiddleware
	// Gatherer backs /metrics; the route is skipped when nil.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	staff := app.Group("/staff")
	staff.Post("/", cfg.Staff.Register)
	staff.Post("/login", cfg.Staff.Login)
	staff.Post("/invite", cfg.AuthMiddleware.Handle, cfg.Staff.InviteVisitor)

	visitors := app.Group("/visitors")
	visitors.Get("/", cfg.Visitors.List)
	visitors.Post("/", cfg.Visitors.Create)
	visitors.Post("/by-staff", cfg.AuthMiddleware.Handle, cfg.Visitors.CreateByStaff)

	// Flag listings must be registered before /:id.
	visitors.Get("/checked-in", cfg.Visitors.ListCheckedIn)
	visitors.Get("/not-checked-in", cfg.Visitors.ListNotCheckedIn)
	visitors.Get("/invited", cfg.Visitors.ListInvited)
	visitors.Get("/not-invited", cfg.Visitors.ListNotInvited)

	visitors.Get("/:id", cfg.Visitors.Get)
	visitors.Get("/:id/checked-in", cfg.Visitors.GetCheckIn)
	visitors.Patch("/:id/checked-in", cfg.Visitors.SetCheckIn)
}
