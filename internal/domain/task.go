package domain

import (
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values. COMPLETED is reserved: no operation moves a
// task into it.
const (
	TaskStatusActive    TaskStatus = "ACTIVE"
	TaskStatusCancelled TaskStatus = "CANCELLED"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusActive, TaskStatusCancelled, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Priority ranks how urgent a task is.
type Priority string

// Possible priority values.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// DefaultPriority is applied when a task is created without one.
const DefaultPriority = PriorityMedium

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority converts a label such as "high" or "HIGH" into a Priority.
func ParsePriority(label string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(label)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Activity actions written to a task's audit trail.
const (
	ActionTaskCreated         = "Task created"
	ActionPriorityChanged     = "Priority changed"
	ActionCommentAdded        = "Comment added"
	ActionCancelledReassigned = "Task cancelled due to reassignment"
	ActionTaskReassigned      = "Task reassigned"
	SystemActor               = "System"
	commentPreviewLength      = 50
	commentPreviewEllipsis    = "..."
)

// TaskComment is an immutable note attached to a task.
type TaskComment struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityLog is an immutable audit record of one mutation on a task.
type ActivityLog struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details"`
}

// Task is a unit of work assigned to a staff member. Comments and
// ActivityLogs are append-only and keep insertion order.
type Task struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Status            TaskStatus    `json:"status"`
	Priority          Priority      `json:"priority"`
	StartDate         *time.Time    `json:"start_date,omitempty"`
	DueDate           *time.Time    `json:"due_date,omitempty"`
	AssignedStaffID   *int64        `json:"assigned_staff_id,omitempty"`
	CustomerReference string        `json:"customer_reference,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	Comments          []TaskComment `json:"comments"`
	ActivityLogs      []ActivityLog `json:"activity_logs"`
}

// NewTask builds an ACTIVE task stamped with now. An empty priority falls
// back to DefaultPriority. Nothing is validated: unknown staff ids and
// inverted date ranges are stored as given.
func NewTask(id int64, title, description string, priority Priority, now time.Time) *Task {
	if priority == "" {
		priority = DefaultPriority
	}
	return &Task{
		ID:           id,
		Title:        title,
		Description:  description,
		Status:       TaskStatusActive,
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
		Comments:     []TaskComment{},
		ActivityLogs: []ActivityLog{},
	}
}

// IsActive reports whether the task is still open.
func (t *Task) IsActive() bool {
	return t.Status == TaskStatusActive
}

// Touch refreshes UpdatedAt.
func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = now
}

// ChangePriority replaces the priority and returns the previous one.
func (t *Task) ChangePriority(p Priority, now time.Time) Priority {
	old := t.Priority
	t.Priority = p
	t.Touch(now)
	return old
}

// Cancel closes the task. CANCELLED is terminal.
func (t *Task) Cancel(now time.Time) {
	t.Status = TaskStatusCancelled
	t.Touch(now)
}

// AddComment appends c and refreshes UpdatedAt.
func (t *Task) AddComment(c TaskComment, now time.Time) {
	t.Comments = append(t.Comments, c)
	t.Touch(now)
}

// AppendActivity appends an audit entry. It does not touch UpdatedAt.
func (t *Task) AppendActivity(entry ActivityLog) {
	t.ActivityLogs = append(t.ActivityLogs, entry)
}

// VisibleInWindow implements the daily view filter: a task is shown when it
// started inside [from, to], or when it started before from and is still
// ACTIVE. Cancelled tasks and tasks without a start date are never shown.
func (t *Task) VisibleInWindow(from, to time.Time) bool {
	if t.Status == TaskStatusCancelled || t.StartDate == nil {
		return false
	}
	start := *t.StartDate
	startedInRange := !start.Before(from) && !start.After(to)
	openFromBefore := start.Before(from) && t.Status == TaskStatusActive
	return startedInRange || openFromBefore
}

// Clone returns a deep copy safe to hand out while the original keeps
// being mutated.
func (t *Task) Clone() *Task {
	c := *t
	if t.StartDate != nil {
		v := *t.StartDate
		c.StartDate = &v
	}
	if t.DueDate != nil {
		v := *t.DueDate
		c.DueDate = &v
	}
	if t.AssignedStaffID != nil {
		v := *t.AssignedStaffID
		c.AssignedStaffID = &v
	}
	c.Comments = append(make([]TaskComment, 0, len(t.Comments)), t.Comments...)
	c.ActivityLogs = append(make([]ActivityLog, 0, len(t.ActivityLogs)), t.ActivityLogs...)
	return &c
}

// CommentPreview shortens a comment for the audit trail: the first 50
// characters, followed by "..." only when something was cut.
func CommentPreview(comment string) string {
	runes := []rune(comment)
	if len(runes) <= commentPreviewLength {
		return comment
	}
	return string(runes[:commentPreviewLength]) + commentPreviewEllipsis
}

// DayWindow expands a pair of calendar days into the inclusive range
// [start 00:00:00, end 23:59:59] in the location of each argument.
func DayWindow(startDay, endDay time.Time) (time.Time, time.Time) {
	from := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, startDay.Location())
	to := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, endDay.Location())
	return from, to
}
