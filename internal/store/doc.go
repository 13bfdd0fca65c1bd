// Package store defines the storage interfaces used by the service layer
// and the error taxonomy shared by their implementations. Implementations
// live under internal/platform.
package store
