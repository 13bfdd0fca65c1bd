package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/events"
	"github.com/phrazzld/workforce-api/internal/ids"
	"github.com/phrazzld/workforce-api/internal/platform/logger"
	"github.com/phrazzld/workforce-api/internal/store"
)

// Clock returns the current time. Tests substitute a deterministic one.
type Clock func() time.Time

// ActivityLogger appends audit entries to tasks and publishes them as
// events once they are stored.
type ActivityLogger struct {
	tasks   store.TaskStore
	ids     *ids.Generator
	emitter events.EventEmitter
	now     Clock
	logger  *slog.Logger
}

// NewActivityLogger creates an ActivityLogger. A nil clock means time.Now.
// It returns an error if any of the required dependencies are nil.
func NewActivityLogger(
	tasks store.TaskStore,
	gen *ids.Generator,
	emitter events.EventEmitter,
	clock Clock,
	log *slog.Logger,
) (*ActivityLogger, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if gen == nil {
		return nil, domain.NewValidationError("gen", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = slog.Default()
	}

	return &ActivityLogger{
		tasks:   tasks,
		ids:     gen,
		emitter: emitter,
		now:     clock,
		logger:  log.With(slog.String("component", "activity_logger")),
	}, nil
}

// Record appends an entry to task and returns it. The caller must own task
// exclusively, which inside the engine means running within a store Update.
func (a *ActivityLogger) Record(task *domain.Task, action, performedBy, details string) domain.ActivityLog {
	entry := domain.ActivityLog{
		ID:          a.ids.Next(ids.KindActivity),
		Action:      action,
		PerformedBy: performedBy,
		Timestamp:   a.now(),
		Details:     details,
	}
	task.AppendActivity(entry)
	return entry
}

// Append records an entry on the stored task and publishes it. It is the
// entry point for callers outside the engine; engine operations call Record
// inside their own Update so the entry commits with the mutation. A missing
// task is not an error: nothing is written and nil is returned.
func (a *ActivityLogger) Append(ctx context.Context, taskID int64, action, performedBy, details string) error {
	log := logger.FromContextOrDefault(ctx, a.logger)

	var entry domain.ActivityLog
	_, err := a.tasks.Update(ctx, taskID, func(task *domain.Task) error {
		entry = a.Record(task, action, performedBy, details)
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("skipping activity for unknown task",
				slog.Int64("task_id", taskID),
				slog.String("action", action))
			return nil
		}
		return err
	}

	a.Publish(ctx, taskID, entry)
	return nil
}

// Publish emits one event per entry. Emitter failures are logged and dropped;
// the entries are already part of the task.
func (a *ActivityLogger) Publish(ctx context.Context, taskID int64, entries ...domain.ActivityLog) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	for _, entry := range entries {
		event := events.NewActivityEvent(
			taskID, entry.ID, entry.Action, entry.PerformedBy, entry.Details, entry.Timestamp)
		if err := a.emitter.EmitEvent(ctx, event); err != nil {
			log.Warn("failed to publish activity event",
				slog.String("error", err.Error()),
				slog.Int64("task_id", taskID),
				slog.Int64("activity_id", entry.ID),
				slog.String("action", entry.Action))
		}
	}
}
