package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"zitta/config"
	_ "zitta/docs" // Swagger docs
	"zitta/internal/app"
	natsDelivery "zitta/internal/assistant/delivery/nats"
	"zitta/internal/httpserver"
	"zitta/pkg/log"
)

// @title       ZiTTA Assistant API
// @description Personal assistant: keyword routing, plugins, todos, memos, file browsing and LLM chat.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. .env is optional
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Configuration error: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s %s...", cfg.App.Name, cfg.App.Version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.LLM.OfflineMode {
		logger.Warn(ctx, "Offline mode: answers come from the rule-based responder")
	}

	// 3. Components
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

	// 4. Plugin hot reload
	if cfg.Plugin.Watch {
		go func() {
			if err := a.Plugins.Watch(ctx); err != nil {
				logger.Warnf(ctx, "Plugin watcher stopped: %v", err)
			}
		}()
		logger.Infof(ctx, "Watching %s for plugin changes", cfg.Plugin.Dir)
	}

	// 5. NATS (optional)
	if cfg.NATS.Enabled {
		ns, err := natsDelivery.Connect(ctx, cfg.NATS, cfg.App.Name, a.Assistant, logger)
		if err != nil {
			logger.Warnf(ctx, "NATS not available (optional): %v", err)
		} else if err := ns.Start(); err != nil {
			logger.Warnf(ctx, "NATS subscribe failed: %v", err)
			ns.Close()
		} else {
			defer ns.Close()
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Version:        cfg.App.Version,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Ready:          a.Ready,
		Assistant:      a.Assistant,
		Todos:          a.Todos,
		Memos:          a.Memos,
		Files:          a.Files,
		Plugins:        a.Plugins,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
