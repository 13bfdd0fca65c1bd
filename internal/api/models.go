package api

import (
	"time"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/service"
)

// CreateTaskRequest defines the payload for POST /api/tasks.
// Only the priority is checked; dates, staff and references are stored as sent.
type CreateTaskRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Priority          string     `json:"priority"           validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	StartDate         *time.Time `json:"start_date"`
	DueDate           *time.Time `json:"due_date"`
	AssignedStaffID   *int64     `json:"assigned_staff_id"`
	CustomerReference string     `json:"customer_reference"`
}

// Params converts the request into engine input.
func (r CreateTaskRequest) Params() service.CreateTaskParams {
	return service.CreateTaskParams{
		Title:             r.Title,
		Description:       r.Description,
		Priority:          domain.Priority(r.Priority),
		StartDate:         r.StartDate,
		DueDate:           r.DueDate,
		AssignedStaffID:   r.AssignedStaffID,
		CustomerReference: r.CustomerReference,
	}
}

// UpdatePriorityRequest defines the payload for PUT /api/tasks/{id}/priority.
type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
}

// AddCommentRequest defines the payload for POST /api/tasks/{id}/comments.
type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
	Author  string `json:"author"`
}

// AssignByReferenceRequest defines the payload for POST /api/tasks/assign-by-ref.
type AssignByReferenceRequest struct {
	CustomerReference string `json:"customer_reference" validate:"required"`
	StaffID           int64  `json:"staff_id"           validate:"required,gt=0"`
}
