// Package main implements the entry point for the workforce API server,
// which tracks tasks assigned to staff, their priority, comments and audit
// trail, and reassigns work by customer reference.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/workforce-api/internal/config"
	"github.com/phrazzld/workforce-api/internal/platform/logger"
	"github.com/phrazzld/workforce-api/internal/platform/telemetry"
)

// main is the entry point for the workforce-api server.
// It initializes configuration, logging and tracing, builds the
// application state, and runs the HTTP server until a shutdown signal.
func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTelEndpoint)
	if err != nil {
		appLogger.Error("Failed to initialize tracing", "error", err)
		shutdownTracer = func() {}
	}
	defer shutdownTracer()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the configured logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_priority", cfg.Tasks.DefaultPriority,
		"seed_staff", cfg.Tasks.SeedStaff,
		"tracing_enabled", cfg.Telemetry.OTelEndpoint != "")

	return cfg, l, nil
}
