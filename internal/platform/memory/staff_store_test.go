package memory

import (
	"context"
	"testing"

	"github.com/phrazzld/workforce-api/internal/domain"
	"github.com/phrazzld/workforce-api/internal/ids"
	"github.com/phrazzld/workforce-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffStore_SeedAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStaffStore(ids.NewGenerator())

	seeded, err := s.Seed(ctx, domain.DefaultRoster())
	require.NoError(t, err)
	require.Len(t, seeded, 3)
	assert.Equal(t, int64(1), seeded[0].ID)
	assert.Equal(t, "John Doe", seeded[0].Name)
	assert.Equal(t, int64(2), seeded[1].ID)
	assert.Equal(t, "Operations", seeded[1].Role)
	assert.Equal(t, int64(3), seeded[2].ID)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded, all)
}

func TestStaffStore_GetByID(t *testing.T) {
	ctx := context.Background()
	s := NewStaffStore(ids.NewGenerator())
	added, err := s.Add(ctx, domain.Staff{ID: 77, Name: "Ana", Email: "ana@company.com", Role: "Support"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID, "caller supplied IDs are replaced")

	got, err := s.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	_, err = s.GetByID(ctx, 77)
	assert.ErrorIs(t, err, store.ErrStaffNotFound)
}

func TestStaffStore_AddRequiresName(t *testing.T) {
	_, err := NewStaffStore(ids.NewGenerator()).Add(context.Background(), domain.Staff{Name: "  "})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestStaffStore_ListEmpty(t *testing.T) {
	all, err := NewStaffStore(ids.NewGenerator()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}
