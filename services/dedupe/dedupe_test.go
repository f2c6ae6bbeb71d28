package dedupe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuardFirstDeliveryPasses(t *testing.T) {
	guard := NewMemoryGuard(2 * time.Minute)

	seen, err := guard.MarkSeen(context.Background(), "SM001")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestMemoryGuardRedeliveryShortCircuits(t *testing.T) {
	guard := NewMemoryGuard(2 * time.Minute)
	ctx := context.Background()

	_, err := guard.MarkSeen(ctx, "SM002")
	require.NoError(t, err)

	seen, err := guard.MarkSeen(ctx, "SM002")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestMemoryGuardExpiresAfterTTL(t *testing.T) {
	guard := NewMemoryGuard(2 * time.Minute)
	ctx := context.Background()

	current := time.Now()
	guard.now = func() time.Time { return current }

	_, err := guard.MarkSeen(ctx, "SM003")
	require.NoError(t, err)

	current = current.Add(3 * time.Minute)
	seen, err := guard.MarkSeen(ctx, "SM003")
	require.NoError(t, err)
	assert.False(t, seen, "expired record must not block reprocessing")
}

func TestMemoryGuardEmptyIDNeverBlocks(t *testing.T) {
	guard := NewMemoryGuard(2 * time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seen, err := guard.MarkSeen(ctx, "")
		require.NoError(t, err)
		assert.False(t, seen)
	}
}
