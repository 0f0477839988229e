package middleware

import (
	"time"

	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every HTTP request and records its duration.
// recorder may be nil.
func RequestLogger(recorder metrics.Recorder) fiber.Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request. Errors are rendered here so the logged status is
		// the one the client sees.
		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		recorder.RecordHTTPRequest(method, route, status, duration)

		return nil
	}
}
