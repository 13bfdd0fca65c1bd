package ids

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorStartsAtOneAndIncreases(t *testing.T) {
	t.Parallel()
	g := NewGenerator()

	assert.Equal(t, int64(1), g.Next(KindTask))
	assert.Equal(t, int64(2), g.Next(KindTask))
	assert.Equal(t, int64(3), g.Next(KindTask))
}

func TestGeneratorKindsAreIndependent(t *testing.T) {
	t.Parallel()
	g := NewGenerator()

	g.Next(KindTask)
	g.Next(KindTask)

	assert.Equal(t, int64(1), g.Next(KindStaff))
	assert.Equal(t, int64(1), g.Next(KindComment))
	assert.Equal(t, int64(1), g.Next(KindActivity))
	assert.Equal(t, int64(3), g.Next(KindTask))
}

func TestGeneratorConcurrentCallersNeverShareAnID(t *testing.T) {
	t.Parallel()
	g := NewGenerator()

	const workers = 16
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, g.Next(KindActivity))
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				assert.False(t, seen[id], "id %d issued twice", id)
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	for i := int64(1); i <= workers*perWorker; i++ {
		assert.True(t, seen[i], "id %d never issued", i)
	}
}

func TestGeneratorPanicsOnUnknownKind(t *testing.T) {
	t.Parallel()
	g := NewGenerator()

	assert.Panics(t, func() { g.Next(Kind(42)) })
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "task", KindTask.String())
	assert.Equal(t, "staff", KindStaff.String())
	assert.Equal(t, "comment", KindComment.String())
	assert.Equal(t, "activity", KindActivity.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
