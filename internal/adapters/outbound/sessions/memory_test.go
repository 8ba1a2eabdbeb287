package sessions

import (
	"testing"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore(10, time.Hour)

	_, found, err := store.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, found)

	session := domain.NewSession("s-1", now)
	session.AppendTurn(domain.ChatRole_User, "hi")
	session.RememberBooking("GF000042")
	require.NoError(t, store.SaveSession(ctx, session))

	got, found, err := store.GetSession(ctx, "s-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, session, got)

	count, err := store.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, store.DeleteSession(ctx, "s-1"))
	require.NoError(t, store.DeleteSession(ctx, "unknown"))

	_, found, err = store.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	store := NewMemoryStore(10, time.Hour)

	session := domain.NewSession("s-1", time.Now())
	session.AppendTurn(domain.ChatRole_User, "hi")
	require.NoError(t, store.SaveSession(ctx, session))

	session.History[0].Content = "changed after save"

	got, _, err := store.GetSession(ctx, "s-1")
	require.NoError(t, err)
	got.AppendTurn(domain.ChatRole_Assistant, "not saved")
	got.History[0].Content = "changed after get"

	stored, _, err := store.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.ConversationTurn{{Role: domain.ChatRole_User, Content: "hi"}}, stored.History)
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := t.Context()
	store := NewMemoryStore(2, time.Hour)

	for _, id := range []string{"a", "b"} {
		require.NoError(t, store.SaveSession(ctx, domain.NewSession(id, time.Now())))
	}
	_, _, _ = store.GetSession(ctx, "a")
	require.NoError(t, store.SaveSession(ctx, domain.NewSession("c", time.Now())))

	_, found, _ := store.GetSession(ctx, "b")
	assert.False(t, found)
	_, found, _ = store.GetSession(ctx, "a")
	assert.True(t, found)
	_, found, _ = store.GetSession(ctx, "c")
	assert.True(t, found)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := t.Context()
	store := NewMemoryStore(10, 20*time.Millisecond)

	require.NoError(t, store.SaveSession(ctx, domain.NewSession("s-1", time.Now())))

	assert.Eventually(t, func() bool {
		_, found, _ := store.GetSession(ctx, "s-1")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_DeleteIdleSessions(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore(10, time.Hour)

	require.NoError(t, store.SaveSession(ctx, domain.NewSession("idle", now.Add(-3*time.Hour))))
	require.NoError(t, store.SaveSession(ctx, domain.NewSession("active", now.Add(-time.Minute))))

	deleted, err := store.DeleteIdleSessions(ctx, now.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, found, _ := store.GetSession(ctx, "idle")
	assert.False(t, found)
	_, found, _ = store.GetSession(ctx, "active")
	assert.True(t, found)
}
