package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/form"
	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/views"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// FormsHandler drives add and edit form sessions.
type FormsHandler struct {
	registry *form.Registry
	deps     form.Dependencies
	catalog  *localization.Catalog
	logger   *zap.Logger
}

// NewFormsHandler constructs handler. deps is copied into every new session.
func NewFormsHandler(registry *form.Registry, deps form.Dependencies, catalog *localization.Catalog, logger *zap.Logger) *FormsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormsHandler{registry: registry, deps: deps, catalog: catalog, logger: logger}
}

// New handles GET /add-employee.
func (h *FormsHandler) New(c *fiber.Ctx) error {
	session := h.registry.Open("", h.deps)
	return seeOther(c, "/forms/"+session.ID)
}

// Edit handles GET /employees/:id/edit.
func (h *FormsHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	session := h.registry.Open(id, h.deps)
	if session.Controller.State() == form.StateNotFound {
		h.registry.Close(session.ID)
		return renderNotFound(c, h.catalog, apperrors.NewNotFound("employee", map[string]any{"id": id}))
	}
	return seeOther(c, "/forms/"+session.ID)
}

// Show handles GET /forms/:formID.
func (h *FormsHandler) Show(c *fiber.Ctx) error {
	session, err := h.registry.Get(c.Params("formID"))
	if err != nil {
		return renderNotFound(c, h.catalog, err)
	}
	return h.render(c, session, fiber.StatusOK)
}

// Submit handles POST /forms/:formID/submit.
func (h *FormsHandler) Submit(c *fiber.Ctx) error {
	session, err := h.registry.Get(c.Params("formID"))
	if err != nil {
		return renderNotFound(c, h.catalog, err)
	}

	args := c.Request().PostArgs()
	for _, f := range form.AllFields {
		if !args.Has(string(f)) {
			continue
		}
		if err := session.Controller.SetField(f, string(args.Peek(string(f)))); err != nil {
			return err
		}
	}

	outcome, err := session.Controller.Submit()
	if path, ok := session.TakeNavigation(); ok {
		h.registry.Close(session.ID)
		return seeOther(c, path)
	}

	switch outcome {
	case form.OutcomeAwaitingConfirmation:
		return h.render(c, session, fiber.StatusOK)
	case form.OutcomeInvalid:
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return renderNotFound(c, h.catalog, err)
		}
		if apperrors.HasCode(err, apperrors.CodeConflict) {
			return err
		}
		return h.render(c, session, fiber.StatusUnprocessableEntity)
	default:
		h.logger.Warn("employee form save rejected", zap.String("form_id", session.ID), zap.Error(err))
		return h.render(c, session, apperrors.ToDomainError(err).HTTPStatus)
	}
}

// Confirm handles POST /forms/:formID/confirm.
func (h *FormsHandler) Confirm(c *fiber.Ctx) error {
	session, err := h.registry.Get(c.Params("formID"))
	if err != nil {
		return renderNotFound(c, h.catalog, err)
	}

	err = session.Controller.Confirm()
	if path, ok := session.TakeNavigation(); ok {
		h.registry.Close(session.ID)
		return seeOther(c, path)
	}
	if err == nil {
		return seeOther(c, "/forms/"+session.ID)
	}
	if session.Controller.State() == form.StateEditing && session.Controller.Alert() != "" {
		return h.render(c, session, apperrors.ToDomainError(err).HTTPStatus)
	}
	return err
}

// Dismiss handles POST /forms/:formID/dismiss.
func (h *FormsHandler) Dismiss(c *fiber.Ctx) error {
	session, err := h.registry.Get(c.Params("formID"))
	if err != nil {
		return renderNotFound(c, h.catalog, err)
	}
	session.Controller.CancelUpdate()
	return seeOther(c, "/forms/"+session.ID)
}

// Cancel handles POST /forms/:formID/cancel.
func (h *FormsHandler) Cancel(c *fiber.Ctx) error {
	session, err := h.registry.Get(c.Params("formID"))
	if err != nil {
		return seeOther(c, form.ListPath)
	}
	session.Controller.Cancel()
	path, ok := session.TakeNavigation()
	h.registry.Close(session.ID)
	if !ok {
		path = form.ListPath
	}
	return seeOther(c, path)
}

func (h *FormsHandler) render(c *fiber.Ctx, session *form.Session, status int) error {
	if session.Controller.State() == form.StateNotFound {
		return renderNotFound(c, h.catalog, apperrors.NewNotFound("employee", map[string]any{"id": session.Controller.EmployeeID()}))
	}
	page := PageFor(c, h.catalog)
	page.Path = "/forms/" + session.ID
	view := views.NewFormView(page, session.ID, session.Controller)
	return c.Status(status).Render(views.PageForm, view)
}
