package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/workforce-api/internal/api"
	apiMiddleware "github.com/phrazzld/workforce-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	staffHandler := api.NewStaffHandler(app.taskService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.CreateTask)
			r.Get("/", taskHandler.ListTasks)
			r.Get("/date-range", taskHandler.ListTasksByDateRange)
			r.Get("/priority/{priority}", taskHandler.ListTasksByPriority)
			r.Post("/assign-by-ref", taskHandler.AssignByReference)
			r.Get("/staff", staffHandler.ListStaff)
			r.Get("/{id}", taskHandler.GetTask)
			r.Put("/{id}/priority", taskHandler.UpdatePriority)
			r.Post("/{id}/comments", taskHandler.AddComment)
		})

		r.Get("/staff", staffHandler.ListStaff)
		r.Get("/staff/{id}", staffHandler.GetStaff)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
