package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Employees *handlers.EmployeesHandler
	Pages     *handlers.PagesHandler
	Forms     *handlers.FormsHandler
	Language  *handlers.LanguageHandler
	Events    *handlers.EventsHandler
	// Metrics serves the Prometheus exposition; nil leaves /metrics unrouted.
	Metrics fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	app.Get("/", cfg.Pages.Home)
	app.Get("/employees", cfg.Pages.List)
	app.Post("/employees/delete", cfg.Pages.BulkDelete)
	app.Post("/employees/:id/delete", cfg.Pages.Delete)

	app.Get("/add-employee", cfg.Forms.New)
	app.Get("/employees/:id/edit", cfg.Forms.Edit)

	forms := app.Group("/forms/:formID")
	forms.Get("", cfg.Forms.Show)
	forms.Post("/submit", cfg.Forms.Submit)
	forms.Post("/confirm", cfg.Forms.Confirm)
	forms.Post("/dismiss", cfg.Forms.Dismiss)
	forms.Post("/cancel", cfg.Forms.Cancel)

	app.Post("/language", cfg.Language.Set)
	app.Get("/events", cfg.Events.Stream)

	api := app.Group("/api")
	api.Get("/language", cfg.Language.Current)
	api.Get("/employees", cfg.Employees.List)
	api.Post("/employees", cfg.Employees.Create)
	api.Get("/employees/:id", cfg.Employees.Get)
	api.Patch("/employees/:id", cfg.Employees.Update)
	api.Delete("/employees/:id", cfg.Employees.Delete)
}
