package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountCache_SetAndGet(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewAmountCache(client)
	ctx := context.Background()

	key := "fp123:dashgo:7:3"
	value := []byte(`{"card_type":"dashgo","balance":0}`)

	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Set(ctx, key, value, 30*time.Second))

	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestAmountCache_TTLExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewAmountCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "fp:dashpro", []byte("{}"), time.Second))
	mr.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "fp:dashpro")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestAmountCache_InvalidateByPhone(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewAmountCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "fpA:dashgo:7:3", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "fpA:dashpro", []byte("b"), time.Minute))
	require.NoError(t, cache.Set(ctx, "fpB:dashgo:7:3", []byte("c"), time.Minute))

	require.NoError(t, cache.Invalidate(ctx, "fpA"))

	for _, key := range []string{"fpA:dashgo:7:3", "fpA:dashpro"} {
		v, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v, key)
	}
	v, err := cache.Get(ctx, "fpB:dashgo:7:3")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), v)

	assert.NoError(t, cache.Invalidate(ctx, "nobody"))
}
