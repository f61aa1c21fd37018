package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// Pinger reports whether an optional dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EmployeeLister is satisfied by the employee store.
type EmployeeLister interface {
	GetEmployees() []domain.Employee
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	employees   EmployeeLister
	redis       Pinger
}

// NewHealthHandler returns a new handler instance. redis may be nil when the change feed is disabled.
func NewHealthHandler(serviceName, version string, employees EmployeeLister, redis Pinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, employees: employees, redis: redis}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if h.employees == nil {
		depStatus["store"] = "not initialized"
		ready = false
	} else {
		depStatus["store"] = fiber.Map{"status": "ok", "employees": len(h.employees.GetEmployees())}
	}

	if h.redis == nil {
		depStatus["redis"] = "disabled"
	} else if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
