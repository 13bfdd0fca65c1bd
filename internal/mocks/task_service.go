package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/service"
)

var _ service.TaskService = (*MockTaskService)(nil)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	CreateTaskFn           func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	GetTaskFn              func(ctx context.Context, id int64) (*domain.Task, error)
	ListTasksFn            func(ctx context.Context) ([]*domain.Task, error)
	ListTasksByPriorityFn  func(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)
	ListTasksByDateRangeFn func(ctx context.Context, startDay, endDay time.Time) ([]*domain.Task, error)
	UpdatePriorityFn       func(ctx context.Context, id int64, priority domain.Priority) (*domain.Task, error)
	AddCommentFn           func(ctx context.Context, id int64, text, author string) (*domain.Task, error)
	AssignByReferenceFn    func(ctx context.Context, customerReference string, staffID int64) (*domain.Task, error)
	ListStaffFn            func(ctx context.Context) ([]domain.Staff, error)
	GetStaffFn             func(ctx context.Context, id int64) (domain.Staff, error)

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	Staff        domain.Staff
	StaffList    []domain.Staff
	DefaultError error
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, params)
	}
	return m.Task, m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// ListTasksByPriority implements the TaskService.ListTasksByPriority method
func (m *MockTaskService) ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error) {
	if m.ListTasksByPriorityFn != nil {
		return m.ListTasksByPriorityFn(ctx, priority)
	}
	return m.Tasks, m.DefaultError
}

// ListTasksByDateRange implements the TaskService.ListTasksByDateRange method
func (m *MockTaskService) ListTasksByDateRange(ctx context.Context, startDay, endDay time.Time) ([]*domain.Task, error) {
	if m.ListTasksByDateRangeFn != nil {
		return m.ListTasksByDateRangeFn(ctx, startDay, endDay)
	}
	return m.Tasks, m.DefaultError
}

// UpdatePriority implements the TaskService.UpdatePriority method
func (m *MockTaskService) UpdatePriority(ctx context.Context, id int64, priority domain.Priority) (*domain.Task, error) {
	if m.UpdatePriorityFn != nil {
		return m.UpdatePriorityFn(ctx, id, priority)
	}
	return m.Task, m.DefaultError
}

// AddComment implements the TaskService.AddComment method
func (m *MockTaskService) AddComment(ctx context.Context, id int64, text, author string) (*domain.Task, error) {
	if m.AddCommentFn != nil {
		return m.AddCommentFn(ctx, id, text, author)
	}
	return m.Task, m.DefaultError
}

// AssignByReference implements the TaskService.AssignByReference method
func (m *MockTaskService) AssignByReference(
	ctx context.Context,
	customerReference string,
	staffID int64,
) (*domain.Task, error) {
	if m.AssignByReferenceFn != nil {
		return m.AssignByReferenceFn(ctx, customerReference, staffID)
	}
	return m.Task, m.DefaultError
}

// ListStaff implements the TaskService.ListStaff method
func (m *MockTaskService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	if m.ListStaffFn != nil {
		return m.ListStaffFn(ctx)
	}
	return m.StaffList, m.DefaultError
}

// GetStaff implements the TaskService.GetStaff method
func (m *MockTaskService) GetStaff(ctx context.Context, id int64) (domain.Staff, error) {
	if m.GetStaffFn != nil {
		return m.GetStaffFn(ctx, id)
	}
	return m.Staff, m.DefaultError
}
