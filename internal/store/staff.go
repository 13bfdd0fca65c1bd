package store

import (
	"context"

	"github.com/phrazzld/workforce-api/internal/domain"
)

// StaffStore defines the interface for staff reference data.
type StaffStore interface {
	// Add stores a staff member, assigning it a new ID, and returns the stored copy.
	Add(ctx context.Context, staff domain.Staff) (domain.Staff, error)

	// GetByID retrieves a staff member by ID.
	// Returns ErrStaffNotFound if the staff member does not exist.
	GetByID(ctx context.Context, id int64) (domain.Staff, error)

	// List returns every staff member ordered by ID.
	List(ctx context.Context) ([]domain.Staff, error)
}
