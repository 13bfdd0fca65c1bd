package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/workforce-api/internal/api/shared"
	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/platform/logger"
	"github.com/phrazzld/workforce-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks service.TaskService, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("tasks cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	log.Info("creating task",
		slog.String("title", req.Title),
		slog.String("priority", req.Priority),
		slog.String("customer_reference", req.CustomerReference))

	task, err := h.tasks.CreateTask(r.Context(), req.Params())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// ListTasks handles GET /api/tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("listing tasks")

	tasks, err := h.tasks.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nonNilTasks(tasks))
}

// GetTask handles GET /api/tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}
	log.Info("getting task", slog.Int64("task_id", id))

	task, err := h.tasks.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// ListTasksByDateRange handles GET /api/tasks/date-range requests.
// Both start_date and end_date are required calendar days (YYYY-MM-DD).
func (h *TaskHandler) ListTasksByDateRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	startDay, err := parseDayParam(r, "start_date")
	if err != nil {
		log.Warn("invalid start_date", slog.String("value", r.URL.Query().Get("start_date")))
		HandleAPIError(w, r, err, "")
		return
	}
	endDay, err := parseDayParam(r, "end_date")
	if err != nil {
		log.Warn("invalid end_date", slog.String("value", r.URL.Query().Get("end_date")))
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("listing tasks by date range",
		slog.String("start_date", startDay.Format(dayLayout)),
		slog.String("end_date", endDay.Format(dayLayout)))

	tasks, err := h.tasks.ListTasksByDateRange(r.Context(), startDay, endDay)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nonNilTasks(tasks))
}

// ListTasksByPriority handles GET /api/tasks/priority/{priority} requests.
// The priority is matched case-insensitively.
func (h *TaskHandler) ListTasksByPriority(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "priority")
	priority, err := domain.ParsePriority(raw)
	if err != nil {
		log.Warn("invalid priority", slog.String("value", raw))
		HandleAPIError(w, r, err, "")
		return
	}
	log.Info("listing tasks by priority", slog.String("priority", string(priority)))

	tasks, err := h.tasks.ListTasksByPriority(r.Context(), priority)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nonNilTasks(tasks))
}

// AssignByReference handles POST /api/tasks/assign-by-ref requests
func (h *TaskHandler) AssignByReference(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AssignByReferenceRequest
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	log.Info("assigning task by reference",
		slog.String("customer_reference", req.CustomerReference),
		slog.Int64("staff_id", req.StaffID))

	task, err := h.tasks.AssignByReference(r.Context(), req.CustomerReference, req.StaffID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to reassign task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdatePriority handles PUT /api/tasks/{id}/priority requests
func (h *TaskHandler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdatePriorityRequest
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	log.Info("updating task priority",
		slog.Int64("task_id", id),
		slog.String("priority", req.Priority))

	task, err := h.tasks.UpdatePriority(r.Context(), id, domain.Priority(req.Priority))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update priority")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// AddComment handles POST /api/tasks/{id}/comments requests
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req AddCommentRequest
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	log.Info("adding comment",
		slog.Int64("task_id", id),
		slog.String("author", req.Author))

	task, err := h.tasks.AddComment(r.Context(), id, req.Comment, req.Author)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// nonNilTasks makes empty results encode as [] rather than null.
func nonNilTasks(tasks []*domain.Task) []*domain.Task {
	if tasks == nil {
		return []*domain.Task{}
	}
	return tasks
}
