package ports

import (
	"context"
	"time"

	"dashqard-redemption/internal/core/domain"

	"github.com/google/uuid"
)

// SessionStore keeps in-flight redemption sessions. Sessions expire after the
// store's TTL and are never durably retained.
type SessionStore interface {
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RedemptionEventRepository persists the redemption audit log.
type RedemptionEventRepository interface {
	Create(ctx context.Context, event *domain.RedemptionEvent) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.RedemptionEvent, error)
}

// AmountCache is a short-lived cache of recipient-amount query responses.
type AmountCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, phoneKey string) error
}

// SubmissionLock prevents concurrent redemption submits for one session.
type SubmissionLock interface {
	// Acquire returns false if another submit already holds the lock.
	Acquire(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) (bool, error)
	Release(ctx context.Context, sessionID uuid.UUID) error
}
