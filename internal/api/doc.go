// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the task engine, translating HTTP concerns to engine operations.
//
// Engine errors are mapped to status codes in one place (errors.go):
// not-found conditions become 404, rejected input 400 and anything else 500.
package api
