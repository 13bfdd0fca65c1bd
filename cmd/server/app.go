package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workforce-api/internal/config"
	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/events"
	"github.com/phrazzld/workforce-api/internal/ids"
	"github.com/phrazzld/workforce-api/internal/platform/memory"
	"github.com/phrazzld/workforce-api/internal/platform/telemetry"
	"github.com/phrazzld/workforce-api/internal/service"
)

// application holds all the shared application dependencies. Every piece of
// state lives here and is built once per process (or once per test).
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// State
	ids        *ids.Generator
	taskStore  *memory.TaskStore
	staffStore *memory.StaffStore

	// Event system
	eventEmitter *events.InMemoryEventEmitter

	// Service interfaces
	activityLogger *service.ActivityLogger
	taskService    service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize state
	app.ids = ids.NewGenerator()
	app.taskStore = memory.NewTaskStore()
	app.staffStore = memory.NewStaffStore(app.ids)

	if cfg.Tasks.SeedStaff {
		seeded, err := app.staffStore.Seed(ctx, domain.DefaultRoster())
		if err != nil {
			return nil, fmt.Errorf("failed to seed staff: %w", err)
		}
		logger.Info("Staff roster seeded", "count", len(seeded))
	}

	// Initialize event emitter
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.LoggingHandler(logger))
	app.eventEmitter.RegisterHandler(telemetry.ActivityMetricsHandler())

	// Initialize activity logger
	var err error
	app.activityLogger, err = service.NewActivityLogger(app.taskStore, app.ids, app.eventEmitter, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity logger: %w", err)
	}

	// Initialize task service
	defaultPriority, err := domain.ParsePriority(cfg.Tasks.DefaultPriority)
	if err != nil {
		return nil, fmt.Errorf("invalid default priority: %w", err)
	}
	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.staffStore,
		app.ids,
		app.activityLogger,
		logger,
		service.WithDefaultPriority(defaultPriority),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed", "tasks_in_memory", app.taskStore.Len())
}
