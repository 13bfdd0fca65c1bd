package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workforce-api/internal/service"
)

// newTestRouter mounts the handlers the same way the server does.
func newTestRouter(svc service.TaskService) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tasks := NewTaskHandler(svc, log)
	staff := NewStaffHandler(svc, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", tasks.CreateTask)
			r.Get("/", tasks.ListTasks)
			r.Get("/date-range", tasks.ListTasksByDateRange)
			r.Get("/priority/{priority}", tasks.ListTasksByPriority)
			r.Post("/assign-by-ref", tasks.AssignByReference)
			r.Get("/staff", staff.ListStaff)
			r.Get("/{id}", tasks.GetTask)
			r.Put("/{id}/priority", tasks.UpdatePriority)
			r.Post("/{id}/comments", tasks.AddComment)
		})
		r.Get("/staff", staff.ListStaff)
		r.Get("/staff/{id}", staff.GetStaff)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}
