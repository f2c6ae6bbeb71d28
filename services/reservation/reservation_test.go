package reservation

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the Store contract. Any implementation (shared or
// in-process) must pass it unchanged.
func runStoreSuite(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("fresh slot is available", func(t *testing.T) {
		free, err := store.IsAvailable(ctx, "t1", "slot_a")
		require.NoError(t, err)
		assert.True(t, free)
	})

	t.Run("reserve then conflict", func(t *testing.T) {
		won, err := store.TryReserve(ctx, "t1", "slot_b")
		require.NoError(t, err)
		assert.True(t, won)

		won, err = store.TryReserve(ctx, "t1", "slot_b")
		require.NoError(t, err)
		assert.False(t, won)

		free, err := store.IsAvailable(ctx, "t1", "slot_b")
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("tenants are isolated", func(t *testing.T) {
		won, err := store.TryReserve(ctx, "t1", "slot_c")
		require.NoError(t, err)
		assert.True(t, won)

		won, err = store.TryReserve(ctx, "t2", "slot_c")
		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("release makes the slot reservable again", func(t *testing.T) {
		_, err := store.TryReserve(ctx, "t1", "slot_d")
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "t1", "slot_d"))

		won, err := store.TryReserve(ctx, "t1", "slot_d")
		require.NoError(t, err)
		assert.True(t, won)
	})
}

func TestMemoryStoreContract(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestMemoryStoreAtMostOneWinner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const callers = 64
	var wg sync.WaitGroup
	wins := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := store.TryReserve(ctx, "tenant", "slot_contested")
			assert.NoError(t, err)
			wins <- won
		}()
	}
	wg.Wait()
	close(wins)

	var winners int
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent caller must win the slot")
}
