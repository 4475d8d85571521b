package handler

import (
	"github.com/gofiber/fiber/v2"

	"repostapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; rules live in the service.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.RepostService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	threads := app.Group("/threads/:thread_id")
	threads.Get("/reposts", ListReposts(svc))
	threads.Post("/reposts", CreateRepost(svc))
	threads.Delete("/reposts/:account_id", DeleteRepost(svc))
}
