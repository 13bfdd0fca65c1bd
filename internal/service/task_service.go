package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/ids"
	"github.com/phrazzld/workforce-api/internal/platform/logger"
	"github.com/phrazzld/workforce-api/internal/platform/telemetry"
	"github.com/phrazzld/workforce-api/internal/store"
)

// CreateTaskParams carries the caller-supplied fields of a new task.
// Everything else (ID, status, timestamps, audit trail) is set by the engine.
type CreateTaskParams struct {
	Title             string
	Description       string
	Priority          domain.Priority
	StartDate         *time.Time
	DueDate           *time.Time
	AssignedStaffID   *int64
	CustomerReference string
}

// TaskService is the task assignment engine.
type TaskService interface {
	// CreateTask stores a new ACTIVE task with a "Task created" audit entry.
	// A missing or unknown priority falls back to the configured default.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetTask returns the task with the given ID or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns every task ordered by ID.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// ListTasksByPriority returns the tasks with exactly the given priority.
	ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)

	// ListTasksByDateRange returns the tasks visible in the daily view for
	// the calendar days startDay through endDay.
	ListTasksByDateRange(ctx context.Context, startDay, endDay time.Time) ([]*domain.Task, error)

	// UpdatePriority replaces a task's priority and audits the change.
	UpdatePriority(ctx context.Context, id int64, priority domain.Priority) (*domain.Task, error)

	// AddComment appends a comment to a task and audits it.
	AddComment(ctx context.Context, id int64, text, author string) (*domain.Task, error)

	// AssignByReference cancels the ACTIVE task carrying customerReference
	// and creates a copy assigned to staffID. It returns the new task, or
	// ErrNoActiveTask when nothing matches.
	AssignByReference(ctx context.Context, customerReference string, staffID int64) (*domain.Task, error)

	// ListStaff returns every staff member ordered by ID.
	ListStaff(ctx context.Context) ([]domain.Staff, error)

	// GetStaff returns the staff member with the given ID or ErrStaffNotFound.
	GetStaff(ctx context.Context, id int64) (domain.Staff, error)
}

// Option configures a TaskService.
type Option func(*taskServiceImpl)

// WithClock replaces time.Now as the source of task timestamps.
func WithClock(clock Clock) Option {
	return func(s *taskServiceImpl) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithDefaultPriority sets the priority given to tasks created without one.
// Invalid values are ignored.
func WithDefaultPriority(p domain.Priority) Option {
	return func(s *taskServiceImpl) {
		if p.IsValid() {
			s.defaultPriority = p
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks           store.TaskStore
	staff           store.StaffStore
	ids             *ids.Generator
	activity        *ActivityLogger
	now             Clock
	defaultPriority domain.Priority
	tracer          trace.Tracer
	logger          *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	staff store.StaffStore,
	gen *ids.Generator,
	activity *ActivityLogger,
	log *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if staff == nil {
		return nil, domain.NewValidationError("staff", "cannot be nil", domain.ErrValidation)
	}
	if gen == nil {
		return nil, domain.NewValidationError("gen", "cannot be nil", domain.ErrValidation)
	}
	if activity == nil {
		return nil, domain.NewValidationError("activity", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:           tasks,
		staff:           staff,
		ids:             gen,
		activity:        activity,
		now:             time.Now,
		defaultPriority: domain.DefaultPriority,
		tracer:          telemetry.Tracer(),
		logger:          log.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// start opens the span for one engine operation.
func (s *taskServiceImpl) start(
	ctx context.Context,
	operation string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "TaskService."+operation, trace.WithAttributes(attrs...))
}

// finish closes span and counts the operation by outcome.
func finish(span trace.Span, operation string, err error) {
	defer span.End()

	switch {
	case err == nil:
		telemetry.ObserveOperation(operation, telemetry.OutcomeOK)
		return
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, ErrStaffNotFound):
		telemetry.ObserveOperation(operation, telemetry.OutcomeNotFound)
	default:
		telemetry.ObserveOperation(operation, telemetry.OutcomeError)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (task *domain.Task, err error) {
	ctx, span := s.start(ctx, "create_task")
	defer func() { finish(span, "create_task", err) }()

	log := logger.FromContextOrDefault(ctx, s.logger)

	priority := params.Priority
	if !priority.IsValid() {
		priority = s.defaultPriority
	}

	task = domain.NewTask(s.ids.Next(ids.KindTask), params.Title, params.Description, priority, s.now())
	task.StartDate = params.StartDate
	task.DueDate = params.DueDate
	task.AssignedStaffID = params.AssignedStaffID
	task.CustomerReference = params.CustomerReference
	created := s.activity.Record(task, domain.ActionTaskCreated, domain.SystemActor,
		fmt.Sprintf("Task created with ID: %d", task.ID))

	if err := s.tasks.Put(ctx, task); err != nil {
		log.Error("failed to store new task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}
	telemetry.TasksCreated.Inc()
	span.SetAttributes(attribute.Int64("task.id", task.ID))

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("priority", string(task.Priority)))
	s.activity.Publish(ctx, task.ID, created)

	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (task *domain.Task, err error) {
	ctx, span := s.start(ctx, "get_task", attribute.Int64("task.id", id))
	defer func() { finish(span, "get_task", err) }()

	task, err = s.tasks.Get(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) (tasks []*domain.Task, err error) {
	ctx, span := s.start(ctx, "list_tasks")
	defer func() { finish(span, "list_tasks", err) }()

	tasks, err = s.tasks.Values(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// ListTasksByPriority implements TaskService.ListTasksByPriority
func (s *taskServiceImpl) ListTasksByPriority(
	ctx context.Context,
	priority domain.Priority,
) (tasks []*domain.Task, err error) {
	ctx, span := s.start(ctx, "list_tasks_by_priority", attribute.String("task.priority", string(priority)))
	defer func() { finish(span, "list_tasks_by_priority", err) }()

	if !priority.IsValid() {
		return nil, domain.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH", domain.ErrInvalidPriority)
	}

	return s.filter(ctx, "list_tasks_by_priority", func(t *domain.Task) bool {
		return t.Priority == priority
	})
}

// ListTasksByDateRange implements TaskService.ListTasksByDateRange
func (s *taskServiceImpl) ListTasksByDateRange(
	ctx context.Context,
	startDay, endDay time.Time,
) (tasks []*domain.Task, err error) {
	from, to := domain.DayWindow(startDay, endDay)
	ctx, span := s.start(ctx, "list_tasks_by_date_range",
		attribute.String("window.from", from.Format(time.RFC3339)),
		attribute.String("window.to", to.Format(time.RFC3339)))
	defer func() { finish(span, "list_tasks_by_date_range", err) }()

	return s.filter(ctx, "list_tasks_by_date_range", func(t *domain.Task) bool {
		return t.VisibleInWindow(from, to)
	})
}

func (s *taskServiceImpl) filter(
	ctx context.Context,
	operation string,
	keep func(*domain.Task) bool,
) ([]*domain.Task, error) {
	all, err := s.tasks.Values(ctx)
	if err != nil {
		return nil, NewTaskServiceError(operation, "failed to list tasks", err)
	}

	matched := make([]*domain.Task, 0, len(all))
	for _, t := range all {
		if keep(t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// UpdatePriority implements TaskService.UpdatePriority
func (s *taskServiceImpl) UpdatePriority(
	ctx context.Context,
	id int64,
	priority domain.Priority,
) (task *domain.Task, err error) {
	ctx, span := s.start(ctx, "update_priority",
		attribute.Int64("task.id", id),
		attribute.String("task.priority", string(priority)))
	defer func() { finish(span, "update_priority", err) }()

	if !priority.IsValid() {
		return nil, domain.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH", domain.ErrInvalidPriority)
	}

	var entry domain.ActivityLog
	task, err = s.tasks.Update(ctx, id, func(t *domain.Task) error {
		old := t.ChangePriority(priority, s.now())
		entry = s.activity.Record(t, domain.ActionPriorityChanged, domain.SystemActor,
			fmt.Sprintf("from %s to %s", old, priority))
		return nil
	})
	if err != nil {
		return nil, NewTaskServiceError("update_priority", "failed to update priority", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task priority updated",
		slog.Int64("task_id", id),
		slog.String("details", entry.Details))
	s.activity.Publish(ctx, id, entry)

	return task, nil
}

// AddComment implements TaskService.AddComment
func (s *taskServiceImpl) AddComment(
	ctx context.Context,
	id int64,
	text, author string,
) (task *domain.Task, err error) {
	ctx, span := s.start(ctx, "add_comment", attribute.Int64("task.id", id))
	defer func() { finish(span, "add_comment", err) }()

	performedBy := author
	if strings.TrimSpace(performedBy) == "" {
		performedBy = domain.SystemActor
	}

	var entry domain.ActivityLog
	task, err = s.tasks.Update(ctx, id, func(t *domain.Task) error {
		now := s.now()
		t.AddComment(domain.TaskComment{
			ID:        s.ids.Next(ids.KindComment),
			Comment:   text,
			Author:    author,
			CreatedAt: now,
		}, now)
		entry = s.activity.Record(t, domain.ActionCommentAdded, performedBy, domain.CommentPreview(text))
		return nil
	})
	if err != nil {
		return nil, NewTaskServiceError("add_comment", "failed to add comment", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("comment added",
		slog.Int64("task_id", id),
		slog.String("author", performedBy))
	s.activity.Publish(ctx, id, entry)

	return task, nil
}

// AssignByReference implements TaskService.AssignByReference
//
// The lookup, the cancellation and the creation are separate steps. Two
// concurrent calls for the same reference can both see the old task ACTIVE
// and both create a replacement.
func (s *taskServiceImpl) AssignByReference(
	ctx context.Context,
	customerReference string,
	staffID int64,
) (task *domain.Task, err error) {
	ctx, span := s.start(ctx, "assign_by_reference",
		attribute.String("task.customer_reference", customerReference),
		attribute.Int64("staff.id", staffID))
	defer func() { finish(span, "assign_by_reference", err) }()

	log := logger.FromContextOrDefault(ctx, s.logger)

	current, err := s.findActiveByReference(ctx, customerReference)
	if err != nil {
		return nil, NewTaskServiceError("assign_by_reference", "failed to find task", err)
	}

	now := s.now()
	var cancelled domain.ActivityLog
	// The replacement copies the record as it was at cancellation, not the
	// scan snapshot, so writes landing in between are carried over.
	old, err := s.tasks.Update(ctx, current.ID, func(t *domain.Task) error {
		t.Cancel(now)
		cancelled = s.activity.Record(t, domain.ActionCancelledReassigned, domain.SystemActor,
			fmt.Sprintf("reassigned to staff %d", staffID))
		return nil
	})
	if err != nil {
		return nil, NewTaskServiceError("assign_by_reference", "failed to cancel task", err)
	}
	s.activity.Publish(ctx, old.ID, cancelled)

	assignee := staffID
	task = domain.NewTask(s.ids.Next(ids.KindTask), old.Title, old.Description, old.Priority, now)
	task.StartDate = old.StartDate
	task.DueDate = old.DueDate
	task.AssignedStaffID = &assignee
	task.CustomerReference = old.CustomerReference
	created := s.activity.Record(task, domain.ActionTaskCreated, domain.SystemActor,
		fmt.Sprintf("Task created with ID: %d", task.ID))
	reassigned := s.activity.Record(task, domain.ActionTaskReassigned, domain.SystemActor,
		fmt.Sprintf("from staff %s to staff %d", formatAssignee(old.AssignedStaffID), staffID))

	if err := s.tasks.Put(ctx, task); err != nil {
		log.Error("failed to store reassigned task",
			slog.String("error", err.Error()),
			slog.Int64("cancelled_task_id", old.ID))
		return nil, NewTaskServiceError("assign_by_reference", "failed to store task", err)
	}
	telemetry.TasksCreated.Inc()
	telemetry.Reassignments.Inc()

	log.Info("task reassigned",
		slog.Int64("cancelled_task_id", old.ID),
		slog.Int64("task_id", task.ID),
		slog.Int64("staff_id", staffID))
	s.activity.Publish(ctx, task.ID, created, reassigned)

	return task, nil
}

// findActiveByReference returns a snapshot of the first ACTIVE task, by ID,
// carrying ref. An empty reference matches nothing.
func (s *taskServiceImpl) findActiveByReference(ctx context.Context, ref string) (*domain.Task, error) {
	if ref == "" {
		return nil, ErrNoActiveTask
	}

	all, err := s.tasks.Values(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.CustomerReference == ref && t.IsActive() {
			return t, nil
		}
	}
	return nil, ErrNoActiveTask
}

func formatAssignee(id *int64) string {
	if id == nil {
		return "unassigned"
	}
	return strconv.FormatInt(*id, 10)
}

// ListStaff implements TaskService.ListStaff
func (s *taskServiceImpl) ListStaff(ctx context.Context) (staff []domain.Staff, err error) {
	ctx, span := s.start(ctx, "list_staff")
	defer func() { finish(span, "list_staff", err) }()

	staff, err = s.staff.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_staff", "failed to list staff", err)
	}
	return staff, nil
}

// GetStaff implements TaskService.GetStaff
func (s *taskServiceImpl) GetStaff(ctx context.Context, id int64) (staff domain.Staff, err error) {
	ctx, span := s.start(ctx, "get_staff", attribute.Int64("staff.id", id))
	defer func() { finish(span, "get_staff", err) }()

	staff, err = s.staff.GetByID(ctx, id)
	if err != nil {
		return domain.Staff{}, NewTaskServiceError("get_staff", "failed to retrieve staff member", err)
	}
	return staff, nil
}
