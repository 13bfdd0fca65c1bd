package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/store"
)

// taskRecord pairs a stored task with the lock that serializes its mutations.
type taskRecord struct {
	mu   sync.Mutex
	task *domain.Task
}

func (r *taskRecord) snapshot() *domain.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.task.Clone()
}

// TaskStore is an in-memory store.TaskStore.
type TaskStore struct {
	mu      sync.RWMutex
	records map[int64]*taskRecord
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{records: make(map[int64]*taskRecord)}
}

// Put implements store.TaskStore. The store keeps its own copy of task.
func (s *TaskStore) Put(_ context.Context, task *domain.Task) error {
	if task == nil || task.ID <= 0 {
		return store.NewStoreError("task", "put", "task must have a positive ID", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[task.ID]; exists {
		return store.NewStoreError("task", "put", "ID already taken", store.ErrTaskExists)
	}
	s.records[task.ID] = &taskRecord{task: task.Clone()}
	return nil
}

// Get implements store.TaskStore.
func (s *TaskStore) Get(_ context.Context, id int64) (*domain.Task, error) {
	rec, ok := s.record(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return rec.snapshot(), nil
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(_ context.Context, id int64, fn store.TaskMutation) (*domain.Task, error) {
	rec, ok := s.record(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if err := fn(rec.task); err != nil {
		return nil, err
	}
	return rec.task.Clone(), nil
}

// Values implements store.TaskStore. The map lock is held only while the
// record handles are collected; each task is then copied under its own lock.
// Results are ordered by ID.
func (s *TaskStore) Values(_ context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	recs := make([]*taskRecord, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, rec.snapshot())
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Len implements store.TaskStore.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *TaskStore) record(id int64) (*taskRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok
}
