package redis

import (
	"context"
	"testing"
	"time"

	"dashqard-redemption/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	branch := int64(7)
	balance := 0.0
	s := domain.NewSession(uuid.New(), "0241234567", time.Now().UTC().Truncate(time.Second))
	s.Step = domain.StepDetails
	s.Method = domain.MethodVendorID
	s.SelectedBranchID = &branch
	s.CardType = domain.CardTypeDashGo
	s.Balance.Balance = &balance
	s.AmountQueries = map[domain.CardType]*domain.RecipientAmounts{
		domain.CardTypeDashGo: {CardType: domain.CardTypeDashGo, Cards: []domain.VendorCard{{CardID: 99}}},
	}

	require.NoError(t, store.Save(ctx, &s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StepDetails, got.Step)
	assert.Equal(t, int64(7), *got.SelectedBranchID)
	require.NotNil(t, got.Balance.Balance, "zero balance must survive the round trip")
	assert.Equal(t, 0.0, *got.Balance.Balance)
	assert.Equal(t, int64(99), got.AmountQueries[domain.CardTypeDashGo].FirstCardID())
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt))
}

func TestSessionStore_Missing(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewSessionStore(client, time.Minute)

	got, err := store.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_ExpiresAndSlides(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewSessionStore(client, time.Minute)
	ctx := context.Background()

	s := domain.NewSession(uuid.New(), "", time.Now())
	require.NoError(t, store.Save(ctx, &s))

	mr.FastForward(45 * time.Second)
	require.NoError(t, store.Save(ctx, &s))
	mr.FastForward(45 * time.Second)

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "save should extend the TTL")

	mr.FastForward(2 * time.Minute)
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Delete(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewSessionStore(client, time.Minute)
	ctx := context.Background()

	s := domain.NewSession(uuid.New(), "", time.Now())
	require.NoError(t, store.Save(ctx, &s))
	require.NoError(t, store.Delete(ctx, s.ID))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewSessionStore(client, time.Minute)
	id := uuid.New()
	require.NoError(t, mr.Set("dqr:session:"+id.String(), "not json"))

	_, err := store.Get(context.Background(), id)
	assert.Error(t, err)
}
