package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/views"
)

// LanguageCookie remembers the language picked by a client.
const LanguageCookie = "lang"

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// localizer picks the cookie language when it is supported and the catalog language otherwise.
func localizer(c *fiber.Ctx, catalog *localization.Catalog) localization.Localizer {
	if lang := c.Cookies(LanguageCookie); lang != "" {
		if code, ok := catalog.Match(lang); ok {
			return catalog.Localizer(code)
		}
	}
	return catalog.Localizer(catalog.Language())
}

// PageFor builds the layout data for the current request.
func PageFor(c *fiber.Ctx, catalog *localization.Catalog) views.Page {
	return views.NewPage(localizer(c, catalog), catalog.AvailableLanguages(), c.Path())
}

// safeRedirect only allows local absolute paths.
func safeRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}

func seeOther(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}
