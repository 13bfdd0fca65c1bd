package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/workforce-api/internal/api/shared"
	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/platform/logger"
	"github.com/phrazzld/workforce-api/internal/service"
)

// StaffHandler serves the staff reference data.
type StaffHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(tasks service.TaskService, logger *slog.Logger) *StaffHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("tasks cannot be nil for StaffHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StaffHandler")
	}

	return &StaffHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "staff_handler")),
	}
}

// ListStaff handles GET /api/staff and GET /api/tasks/staff requests
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("listing staff")

	staff, err := h.tasks.ListStaff(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list staff")
		return
	}
	if staff == nil {
		staff = []domain.Staff{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, staff)
}

// GetStaff handles GET /api/staff/{id} requests
func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}
	log.Info("getting staff member", slog.Int64("staff_id", id))

	staff, err := h.tasks.GetStaff(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get staff member")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, staff)
}
