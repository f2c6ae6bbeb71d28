package session

import (
	"context"
	"testing"
	"time"

	"turnero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLoadCreatesFreshSession(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)

	sess, err := store.Load(context.Background(), "t1", "+549110001")
	require.NoError(t, err)
	assert.Equal(t, models.StateHome, sess.State)
	assert.Equal(t, "t1", sess.TenantID)
	assert.Empty(t, sess.Selection.ServiceID)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	sess, err := store.Load(ctx, "t1", "+549110001")
	require.NoError(t, err)
	sess.State = models.StateChooseSlot
	sess.Selection.ServiceID = "svc1"
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Load(ctx, "t1", "+549110001")
	require.NoError(t, err)
	assert.Equal(t, models.StateChooseSlot, got.State)
	assert.Equal(t, "svc1", got.Selection.ServiceID)
}

func TestMemoryStoreExpiresAfterTTL(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	sess, err := store.Load(ctx, "t1", "+549110001")
	require.NoError(t, err)
	sess.State = models.StateConfirm
	require.NoError(t, store.Save(ctx, sess))

	current = current.Add(31 * time.Minute)
	got, err := store.Load(ctx, "t1", "+549110001")
	require.NoError(t, err)
	assert.Equal(t, models.StateHome, got.State, "expired session must restart fresh")
}

func TestSessionHistoryBounded(t *testing.T) {
	sess := models.NewSession("t1", "+549110001")
	for i := 0; i < models.HistoryLimit*2; i++ {
		sess.PushHistory("user", "msg")
	}
	assert.Len(t, sess.History, models.HistoryLimit)
}
