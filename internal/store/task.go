package store

import (
	"context"

	"github.com/phrazzld/workforce-api/internal/domain"
)

// TaskMutation changes a stored task in place. It runs while the task's
// own lock is held, so it must not call back into the store.
type TaskMutation func(task *domain.Task) error

// TaskStore defines the interface for task state.
// Every task handed out by a TaskStore is a private snapshot; changes must
// go through Update to become visible to other callers.
type TaskStore interface {
	// Put stores a new task.
	// Returns ErrTaskExists if a task with the same ID is already stored.
	Put(ctx context.Context, task *domain.Task) error

	// Get retrieves a snapshot of the task with the given ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Update applies fn to the stored task under that task's lock and
	// returns a snapshot taken before the lock is released.
	// Returns ErrTaskNotFound if the task does not exist, or the error
	// returned by fn (in which case fn's partial changes are kept).
	Update(ctx context.Context, id int64, fn TaskMutation) (*domain.Task, error)

	// Values returns a point-in-time snapshot of every task. Writes racing
	// with the call may or may not be reflected.
	Values(ctx context.Context) ([]*domain.Task, error)

	// Len returns the number of stored tasks.
	Len() int
}
