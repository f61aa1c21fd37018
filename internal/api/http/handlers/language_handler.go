package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/localization"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// LanguageHandler switches the active language.
type LanguageHandler struct {
	catalog *localization.Catalog
}

// NewLanguageHandler constructs handler.
func NewLanguageHandler(catalog *localization.Catalog) *LanguageHandler {
	return &LanguageHandler{catalog: catalog}
}

// Set handles POST /language. Form posts are redirected back, JSON posts get the new language.
func (h *LanguageHandler) Set(c *fiber.Ctx) error {
	var req dto.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	code, ok := h.catalog.Match(req.Lang)
	if !ok {
		return apperrors.NewValidationError("language not supported", map[string]any{
			"lang":      req.Lang,
			"available": h.catalog.AvailableLanguages(),
		})
	}
	if err := h.catalog.SetLanguage(code); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     LanguageCookie,
		Value:    code,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		return c.JSON(fiber.Map{"data": fiber.Map{"language": code}})
	}
	return seeOther(c, safeRedirect(req.Redirect, "/employees"))
}

// Current handles GET /api/language.
func (h *LanguageHandler) Current(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{
		"language":  localizer(c, h.catalog).Language(),
		"available": h.catalog.AvailableLanguages(),
	}})
}
