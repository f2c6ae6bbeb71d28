package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsShape(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 30, 12, 0, time.UTC)

	slots := GenerateSlots(now, 3, []int{10, 11, 14, 16})
	require.Len(t, slots, 12)

	// Starts tomorrow, never today.
	first := slots[0]
	assert.Equal(t, 11, first.StartAt.Day())
	assert.Equal(t, 10, first.StartAt.Hour())
	assert.Zero(t, first.StartAt.Minute())
	assert.Zero(t, first.StartAt.Second())

	// Chronological order.
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].StartAt.After(slots[i-1].StartAt))
	}
}

func TestGenerateSlotsDeterministicIdentity(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	a := GenerateSlots(now, 3, []int{10, 14})
	b := GenerateSlots(now, 3, []int{10, 14})
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].StartAt, b[i].StartAt)
	}
}

func TestGenerateSlotsEmptyHours(t *testing.T) {
	slots := GenerateSlots(time.Now(), 5, nil)
	assert.Empty(t, slots)
}

func TestSlotIDDerivedFromInstant(t *testing.T) {
	at := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, SlotID(at), SlotID(at))
	assert.NotEqual(t, SlotID(at), SlotID(at.Add(time.Hour)))
}
