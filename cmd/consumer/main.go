package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"zitta/config"
	"zitta/internal/app"
	natsDelivery "zitta/internal/assistant/delivery/nats"
	"zitta/pkg/log"
)

// main runs a headless worker that answers chat requests published on NATS.
// It shares the database and plugin directory with cmd/api.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Configuration error: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		return
	}
	defer func() {
		if err := a.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Warnf(ctx, "Shutdown: %v", err)
		}
	}()

	// Unlike cmd/api, NATS is mandatory here.
	ns, err := natsDelivery.Connect(ctx, cfg.NATS, cfg.App.Name+"-consumer", a.Assistant, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer ns.Close()

	if err := ns.Start(); err != nil {
		logger.Error(ctx, "Failed to subscribe: ", err)
		return
	}

	logger.Infof(ctx, "Consumer service listening on %s. Waiting for shutdown signal...", cfg.NATS.Subject)
	<-ctx.Done()
	logger.Info(ctx, "Consumer service stopped gracefully")
}
