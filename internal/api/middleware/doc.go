// Package middleware holds the HTTP middleware shared by every route:
// request tracing and request logging with latency metrics.
package middleware
