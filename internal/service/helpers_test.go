package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/events"
	"github.com/phrazzld/workforce-api/internal/ids"
	"github.com/phrazzld/workforce-api/internal/platform/memory"
	"github.com/phrazzld/workforce-api/internal/store"
)

// stepClock advances one second on every reading so that successive
// timestamps are strictly ordered.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// eventRecorder collects published activity events.
type eventRecorder struct {
	mu     sync.Mutex
	events []*events.ActivityEvent
}

func (r *eventRecorder) HandleEvent(_ context.Context, event *events.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// testEnv is a fresh engine over in-memory stores.
type testEnv struct {
	svc      TaskService
	activity *ActivityLogger
	tasks    *memory.TaskStore
	staff    *memory.StaffStore
	recorder *eventRecorder
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, memory.NewTaskStore(), opts...)
}

func newTestEnvWithStore(t *testing.T, tasks store.TaskStore, opts ...Option) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := ids.NewGenerator()
	clock := newStepClock()

	staff := memory.NewStaffStore(gen)
	_, err := staff.Seed(context.Background(), domain.DefaultRoster())
	require.NoError(t, err)

	recorder := &eventRecorder{}
	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(recorder)

	activity, err := NewActivityLogger(tasks, gen, emitter, clock.Now, log)
	require.NoError(t, err)

	svc, err := NewTaskService(tasks, staff, gen, activity, log,
		append([]Option{WithClock(clock.Now)}, opts...)...)
	require.NoError(t, err)

	env := &testEnv{
		svc:      svc,
		activity: activity,
		staff:    staff,
		recorder: recorder,
	}
	if mem, ok := tasks.(*memory.TaskStore); ok {
		env.tasks = mem
	}
	return env
}

func day(year int, month time.Month, d, hour int) *time.Time {
	t := time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
	return &t
}

func staffID(id int64) *int64 {
	return &id
}
