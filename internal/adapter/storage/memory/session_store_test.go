package memory

import (
	"context"
	"testing"
	"time"

	"dashqard-redemption/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedStore(ttl time.Duration) (*SessionStore, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStore(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store, _ := newClockedStore(time.Minute)
	ctx := context.Background()

	s := domain.NewSession(uuid.New(), "0241234567", time.Now())
	s.CardType = domain.CardTypeDashX
	require.NoError(t, store.Save(ctx, &s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.CardTypeDashX, got.CardType)

	got.CardType = domain.CardTypeDashGo
	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CardTypeDashX, again.CardType, "stored copy is isolated from callers")

	require.NoError(t, store.Delete(ctx, s.ID))
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Expiry(t *testing.T) {
	store, now := newClockedStore(time.Minute)
	ctx := context.Background()

	s := domain.NewSession(uuid.New(), "", time.Now())
	require.NoError(t, store.Save(ctx, &s))

	*now = now.Add(59 * time.Second)
	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	*now = now.Add(time.Second)
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Sweep(t *testing.T) {
	store, now := newClockedStore(time.Minute)
	ctx := context.Background()

	old := domain.NewSession(uuid.New(), "", time.Now())
	require.NoError(t, store.Save(ctx, &old))
	*now = now.Add(30 * time.Second)
	fresh := domain.NewSession(uuid.New(), "", time.Now())
	require.NoError(t, store.Save(ctx, &fresh))

	*now = now.Add(45 * time.Second)
	assert.Equal(t, 1, store.Sweep())

	got, err := store.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
