// Package telemetry holds the Prometheus metrics and OpenTelemetry tracing
// setup shared by the HTTP layer and the task engine.
package telemetry
