package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/service"
	"github.com/spec-kit/employee-portal/internal/validation"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// EmployeesHandler exposes the JSON API under /api/employees.
type EmployeesHandler struct {
	service   *service.EmployeeService
	validator *validator.Validate
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(svc *service.EmployeeService, v *validator.Validate) *EmployeesHandler {
	return &EmployeesHandler{service: svc, validator: v}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)

	list, total := h.service.ListEmployees(c.UserContext(), service.EmployeeListFilters{
		Query:  c.Query("q"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})

	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, employeeResponse(&list[i]))
	}
	return c.JSON(fiber.Map{
		"data": resp,
		"meta": dto.ListMeta{Total: total, Page: page, PageSize: pageSize},
	})
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	employee, err := h.service.GetEmployeeByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(&employee)})
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("invalid employee", validation.Details(err))
	}

	created, err := h.service.CreateEmployee(c.UserContext(), req.Data())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(&created)})
}

// Update handles PATCH /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("invalid employee", validation.Details(err))
	}

	updated, err := h.service.UpdateEmployee(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(&updated)})
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.service.DeleteEmployee(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(&removed)})
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		DateOfEmployment: e.DateOfEmployment,
		DateOfBirth:      e.DateOfBirth,
		PhoneNumber:      e.PhoneNumber,
		Email:            e.Email,
		Department:       string(e.Department),
		Position:         string(e.Position),
	}
}
