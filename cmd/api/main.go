package main

import (
	"context"
	"errors"
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
	"go.uber.org/zap"

	"contractapi/docs"
	"contractapi/internal/app"
	"contractapi/internal/config"
	handlers "contractapi/internal/http/handler"
	"contractapi/internal/http/middleware"
	"contractapi/internal/logger"
	"contractapi/internal/otel"
	"contractapi/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	bodyLimit       = 50 << 20
)

// @title Contract API
// @version 1.0
// @description Contract lifecycle, expiry reminders and notifications.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := app.New(ctx, cfg, log, reg)
	if err != nil {
		return err
	}
	defer a.Close()

	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, a.Metrics)

	server := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		BodyLimit:    bodyLimit,
		ErrorHandler: handlers.ErrorHandler(),
	})

	server.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	server.Use(middleware.RequestID())
	server.Use(middleware.Logger(log))
	server.Use(httpMetrics.Handler())

	server.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(server, a.DB, a.Services, limiter.Handler())

	// Swagger UI with dynamic host and scheme
	server.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	if cfg.Worker.Enabled {
		sched := worker.NewScheduler(a.Services.Sweep, a.Services.Activities, cfg.Worker.SweepInterval, cfg.Worker.ActivityRetain, log)
		sched.Start(ctx)
		defer sched.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		errCh <- server.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
