package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionLock_AcquireRelease(t *testing.T) {
	lock := NewSubmissionLock()
	ctx := context.Background()
	id := uuid.New()

	ok, err := lock.Acquire(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = lock.Acquire(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	other, err := lock.Acquire(ctx, uuid.New(), time.Minute)
	require.NoError(t, err)
	assert.True(t, other)

	require.NoError(t, lock.Release(ctx, id))
	ok, err = lock.Acquire(ctx, id, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmissionLock_Expires(t *testing.T) {
	lock := NewSubmissionLock()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lock.now = func() time.Time { return now }
	id := uuid.New()

	ok, _ := lock.Acquire(context.Background(), id, 30*time.Second)
	require.True(t, ok)

	now = now.Add(31 * time.Second)
	ok, _ = lock.Acquire(context.Background(), id, 30*time.Second)
	assert.True(t, ok, "expired lock can be taken over")
}
