package http

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/xmikiesx/usage-metrics-api/internal/metrics"
	"github.com/xmikiesx/usage-metrics-api/internal/observability"
	"github.com/xmikiesx/usage-metrics-api/pkg/util"
)

// RegisterMiddlewares attaches global middlewares: error handling, request
// tracking and access logging, in that order.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, acc *metrics.Accumulator, trackingEnabled bool) {
	app.Use(errorHandlingMiddleware(logger))
	if trackingEnabled {
		app.Use(metricsTrackingMiddleware(acc))
	}
	app.Use(observability.RequestLogger(logger))
}

// metricsTrackingMiddleware records every request completion, exactly once,
// after the rest of the chain has run.
func metricsTrackingMiddleware(acc *metrics.Accumulator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		acc.RecordCompletion(endpointKey(c), time.Since(start).Milliseconds())
		return err
	}
}

// endpointKey collapses concrete paths into their registered route template,
// e.g. "GET /users/:id". Unmatched requests keep their literal path, so
// distinct unknown paths are recorded under distinct keys.
func endpointKey(c *fiber.Ctx) string {
	path := c.Path()
	if route := c.Route(); route != nil && route.Path != "" && route.Path != "/" {
		path = route.Path
	}
	return c.Method() + " " + path
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = util.NewInternalError("An unexpected error occurred", nil)
			}
			if err != nil {
				appErr := toAppError(err)
				if appErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(appErr))
				}
				response := fiber.Map{"error": appErr.ErrorText}
				if appErr.Message != "" {
					response["message"] = appErr.Message
				}
				c.Status(appErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// toAppError maps fiber framework errors (404s and friends) before falling
// back to the shared conversion.
func toAppError(err error) *util.AppError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return util.NewAppError(fiberErr.Message, "", fiberErr.Code)
	}
	return util.ToAppError(err)
}
