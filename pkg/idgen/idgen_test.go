package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaenen/ulid/pkg/ulid"
)

func TestGenerateSortableID(t *testing.T) {
	prev := MustGenerateSortableID()
	_, err := ulid.Parse(prev)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		next, err := GenerateSortableID()
		require.NoError(t, err)
		require.Less(t, prev, next)
		prev = next
	}
}

func TestGenerateSortableIDConcurrent(t *testing.T) {
	const workers, perWorker = 4, 250

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- MustGenerateSortableID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}
