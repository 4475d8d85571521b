package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AccessLog is a middleware that logs each HTTP request as one JSON line.
// Fields: request_id (from RequestID), method, path, status, latency (ms).
// Server errors are logged at error level, client errors at warn.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		var e *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			e = log.Error()
		case status >= fiber.StatusBadRequest:
			e = log.Warn()
		default:
			e = log.Info()
		}
		e.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Send()

		return err
	}
}
