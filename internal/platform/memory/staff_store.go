package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/ids"
	"github.com/phrazzld/workforce-api/internal/store"
)

// StaffStore is an in-memory store.StaffStore. Staff are written at startup
// and read afterwards, hence the RWMutex.
type StaffStore struct {
	mu    sync.RWMutex
	staff map[int64]domain.Staff
	ids   *ids.Generator
}

var _ store.StaffStore = (*StaffStore)(nil)

// NewStaffStore creates an empty StaffStore drawing IDs from gen.
func NewStaffStore(gen *ids.Generator) *StaffStore {
	return &StaffStore{
		staff: make(map[int64]domain.Staff),
		ids:   gen,
	}
}

// Seed adds every member of roster and returns the stored copies.
func (s *StaffStore) Seed(ctx context.Context, roster []domain.Staff) ([]domain.Staff, error) {
	out := make([]domain.Staff, 0, len(roster))
	for _, member := range roster {
		stored, err := s.Add(ctx, member)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

// Add implements store.StaffStore. Any ID set on staff is replaced.
func (s *StaffStore) Add(_ context.Context, staff domain.Staff) (domain.Staff, error) {
	if strings.TrimSpace(staff.Name) == "" {
		return domain.Staff{}, store.NewStoreError("staff", "add", "name is required", store.ErrInvalidEntity)
	}

	staff.ID = s.ids.Next(ids.KindStaff)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[staff.ID] = staff
	return staff, nil
}

// GetByID implements store.StaffStore.
func (s *StaffStore) GetByID(_ context.Context, id int64) (domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	staff, ok := s.staff[id]
	if !ok {
		return domain.Staff{}, store.ErrStaffNotFound
	}
	return staff, nil
}

// List implements store.StaffStore.
func (s *StaffStore) List(_ context.Context) ([]domain.Staff, error) {
	s.mu.RLock()
	out := make([]domain.Staff, 0, len(s.staff))
	for _, staff := range s.staff {
		out = append(out, staff)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
