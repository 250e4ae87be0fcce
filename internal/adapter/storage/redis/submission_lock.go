package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SubmissionLock implements ports.SubmissionLock using Redis SET NX.
type SubmissionLock struct {
	client goredis.Cmdable
	prefix string
}

// NewSubmissionLock creates a Redis-backed submission lock.
func NewSubmissionLock(client goredis.Cmdable) *SubmissionLock {
	return &SubmissionLock{
		client: client,
		prefix: keyPrefix + "submit:",
	}
}

// Acquire takes the lock for a session. Returns false if it is already held.
// The TTL bounds how long a crashed submit can block the session.
func (l *SubmissionLock) Acquire(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+sessionID.String(), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis submission lock: %w", err)
	}
	return result == "OK", nil
}

// Release frees the lock.
func (l *SubmissionLock) Release(ctx context.Context, sessionID uuid.UUID) error {
	if err := l.client.Del(ctx, l.prefix+sessionID.String()).Err(); err != nil {
		return fmt.Errorf("redis submission unlock: %w", err)
	}
	return nil
}
