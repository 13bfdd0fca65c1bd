package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/phrazzld/workforce-api/internal/events"
)

// Outcome labels for EngineOperations.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// ─── Task engine ─────────────────────────────────────────────────────────────

	EngineOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workforce",
		Subsystem: "engine",
		Name:      "operations_total",
		Help:      "Task engine operations, labelled by operation and outcome.",
	}, []string{"operation", "outcome"})

	TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "workforce",
		Subsystem: "engine",
		Name:      "tasks_created_total",
		Help:      "Tasks created, including those spawned by reassignment.",
	})

	Reassignments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "workforce",
		Subsystem: "engine",
		Name:      "reassignments_total",
		Help:      "Successful reassignments by customer reference.",
	})

	ActivityEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workforce",
		Subsystem: "engine",
		Name:      "activity_entries_total",
		Help:      "Audit entries appended to tasks, labelled by action.",
	}, []string{"action"})

	// ─── HTTP ────────────────────────────────────────────────────────────────────

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workforce",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, labelled by method, route pattern and status.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route", "status"})
)

// ObserveOperation counts one engine operation.
func ObserveOperation(operation, outcome string) {
	EngineOperations.WithLabelValues(operation, outcome).Inc()
}

// ActivityMetricsHandler counts every emitted activity event by action.
func ActivityMetricsHandler() events.EventHandler {
	return events.HandlerFunc(func(_ context.Context, event *events.ActivityEvent) error {
		ActivityEntries.WithLabelValues(event.Action).Inc()
		return nil
	})
}
