// Command sweep runs one expiry reminder pass and exits. It is meant for cron-style
// schedulers when the in-process worker is disabled.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"contractapi/internal/app"
	"contractapi/internal/config"
	"contractapi/internal/logger"
	"contractapi/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	if err := run(cfg, log); err != nil {
		log.Error("sweep command failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	created, err := a.Services.Sweep.Run(ctx)
	switch {
	case errors.Is(err, service.ErrSweepInProgress):
		log.Info("another sweep is running, nothing to do")
	case err != nil:
		return err
	default:
		log.Info("expiry sweep finished", zap.Int("created", created))
	}

	deleted, err := a.Services.Activities.Cleanup(ctx, cfg.Worker.ActivityRetain)
	if err != nil {
		return err
	}
	log.Info("activity cleanup finished", zap.Int("deleted", deleted))
	return nil
}
