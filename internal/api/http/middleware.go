package http

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/observability"
	"github.com/spec-kit/employee-portal/internal/views"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// The request logger runs outside the error handler so it sees the final status.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, catalog *localization.Catalog, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics, catalog))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, catalog *localization.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}

				c.Status(domainErr.HTTPStatus)
				if wantsHTML(c) && catalog != nil {
					err = c.Render(views.PageError, views.ErrorView{
						Page:    handlers.PageFor(c, catalog),
						Status:  domainErr.HTTPStatus,
						Code:    domainErr.Code,
						Message: domainErr.Message,
					})
					if err == nil {
						return
					}
					logger.Error("render error page", zap.Error(err))
				}

				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// toDomainError also maps fiber's routing errors, such as unknown routes, onto error codes.
func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if !errors.As(err, &fiberErr) {
		return apperrors.ToDomainError(err)
	}

	code := "REQUEST_FAILED"
	switch {
	case fiberErr.Code == fiber.StatusNotFound:
		code = apperrors.CodeNotFound
	case fiberErr.Code == fiber.StatusBadRequest || fiberErr.Code == fiber.StatusUnprocessableEntity:
		code = apperrors.CodeValidationFailed
	case fiberErr.Code == fiber.StatusConflict:
		code = apperrors.CodeConflict
	case fiberErr.Code >= fiber.StatusInternalServerError:
		code = apperrors.CodeInternal
	}
	return apperrors.NewDomainError(code, fiberErr.Message, fiberErr.Code, nil)
}

func wantsHTML(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api") {
		return false
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}
