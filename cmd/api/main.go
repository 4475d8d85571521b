package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"repostapi/docs"
	"repostapi/internal/config"
	"repostapi/internal/database"
	handlers "repostapi/internal/http/handler"
	"repostapi/internal/http/middleware"
	"repostapi/internal/logger"
	"repostapi/internal/otel"
	"repostapi/internal/repository"
	"repostapi/internal/repository/postgres"
	"repostapi/internal/repository/sqlite"
	"repostapi/internal/service"
)

// @title Repost API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logger.New(cfg.LogLevel, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// The connection is shared process-wide; repositories borrow it and never close it.
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("db_driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Driver),
	)

	repo, err := newRepostRepository(cfg.Database.Driver, db, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize repository")
	}
	repo = repository.NewLoggedRepostRepository(repo, log)
	repostSvc := service.NewRepostService(repo)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger.Component(log, "http")))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(
		otelhttp.NewHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "metrics"),
	))

	handlers.RegisterRoutes(app, db, repostSvc)

	if cfg.SwaggerEnabled {
		// Swagger UI with dynamic host and scheme
		app.Get("/swagger/*", func(c *fiber.Ctx) error {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}

			docs.SwaggerInfo.Host = c.Get("Host")
			docs.SwaggerInfo.Schemes = []string{scheme}

			return swagger.HandlerDefault(c)
		})
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("event", "server_started").Str("addr", addr).Str("db_driver", cfg.Database.Driver).Send()
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		log.Info().Str("event", "server_stopping").Send()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

// newRepostRepository picks the SQL dialect for driver and instruments it.
func newRepostRepository(driver string, db *sql.DB, reg prometheus.Registerer) (repository.RepostRepository, error) {
	var base repository.RepostRepository
	switch driver {
	case config.DriverSQLite:
		base = sqlite.NewRepostSQLite(db)
	default:
		base = postgres.NewRepostPostgres(db)
	}
	return repository.NewInstrumentedRepostRepository(base, reg)
}
