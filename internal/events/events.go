package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityEvent describes an audit entry that was appended to a task.
type ActivityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// TaskID is the task the entry belongs to
	TaskID int64 `json:"task_id"`

	// ActivityID is the identifier of the audit entry itself
	ActivityID int64 `json:"activity_id"`

	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	Details     string    `json:"details"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewActivityEvent creates an ActivityEvent with a fresh event ID.
func NewActivityEvent(taskID, activityID int64, action, performedBy, details string, at time.Time) *ActivityEvent {
	return &ActivityEvent{
		ID:          uuid.New(),
		TaskID:      taskID,
		ActivityID:  activityID,
		Action:      action,
		PerformedBy: performedBy,
		Details:     details,
		OccurredAt:  at,
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ActivityEvent) error
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(ctx context.Context, event *ActivityEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *ActivityEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ActivityEvent) error
}
