// Package domain contains the core business entities of the workforce
// backend: tasks, their comments and audit entries, and staff members.
// It has no knowledge of storage or transport.
package domain
