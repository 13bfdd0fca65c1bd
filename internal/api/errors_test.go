package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workforce-api/internal/api/shared"
	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/service"
	"github.com/phrazzld/workforce-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "task not found",
			err:            service.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "no active task",
			err:            service.ErrNoActiveTask,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "staff not found",
			err:            service.ErrStaffNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped store not found",
			err:            fmt.Errorf("lookup: %w", store.ErrTaskNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid priority",
			err:            domain.NewValidationError("priority", "is invalid", domain.ErrInvalidPriority),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid date",
			err:            domain.ErrInvalidDate,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid entity",
			err:            store.ErrInvalidEntity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unexpected service error",
			err:            &service.TaskServiceError{Operation: "list_tasks", Message: "boom", Err: errors.New("x")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: "An unexpected error occurred"},
		{name: "task not found", err: service.ErrTaskNotFound, expected: "Task not found"},
		{name: "no active task", err: service.ErrNoActiveTask, expected: "No active task for this reference"},
		{name: "staff not found", err: service.ErrStaffNotFound, expected: "Staff member not found"},
		{name: "invalid id", err: domain.ErrInvalidID, expected: "Invalid ID"},
		{
			name:     "invalid priority",
			err:      domain.ErrInvalidPriority,
			expected: "Invalid priority: must be one of LOW, MEDIUM, HIGH",
		},
		{name: "invalid date", err: domain.ErrInvalidDate, expected: "Invalid date: expected YYYY-MM-DD"},
		{
			name:     "internal details hidden",
			err:      errors.New("connection string user=admin"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(&AssignByReferenceRequest{CustomerReference: "R"})
	require.Error(t, err)
	assert.Equal(t, "Invalid StaffID: required field", SanitizeValidationError(err))

	err = shared.ValidateRequest(&UpdatePriorityRequest{Priority: "SOON"})
	require.Error(t, err)
	assert.Equal(t, "Invalid Priority: invalid value", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("default message replaces generic 500 text", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		rr := httptest.NewRecorder()

		HandleAPIError(rr, req, errors.New("boom"), "Failed to list tasks")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to list tasks")
		assert.NotContains(t, rr.Body.String(), "boom")
	})

	t.Run("default message ignored for 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/9", nil)
		rr := httptest.NewRecorder()

		HandleAPIError(rr, req, service.ErrTaskNotFound, "Failed to get task")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task not found")
	})
}
