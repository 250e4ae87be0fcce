package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionLock_AcquireRelease(t *testing.T) {
	_, client := newTestRedis(t)
	lock := NewSubmissionLock(client)
	ctx := context.Background()
	id := uuid.New()

	ok, err := lock.Acquire(ctx, id, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = lock.Acquire(ctx, id, 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	other, err := lock.Acquire(ctx, uuid.New(), 30*time.Second)
	require.NoError(t, err)
	assert.True(t, other, "locks are per session")

	require.NoError(t, lock.Release(ctx, id))
	ok, err = lock.Acquire(ctx, id, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmissionLock_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	lock := NewSubmissionLock(client)
	ctx := context.Background()
	id := uuid.New()

	ok, err := lock.Acquire(ctx, id, 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(6 * time.Second)

	ok, err = lock.Acquire(ctx, id, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
