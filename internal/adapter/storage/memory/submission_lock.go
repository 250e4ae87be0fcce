package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SubmissionLock implements ports.SubmissionLock for a single process.
type SubmissionLock struct {
	mu   sync.Mutex
	held map[uuid.UUID]time.Time // session -> lock expiry
	now  func() time.Time
}

// NewSubmissionLock creates an in-memory submission lock.
func NewSubmissionLock() *SubmissionLock {
	return &SubmissionLock{
		held: make(map[uuid.UUID]time.Time),
		now:  time.Now,
	}
}

// Acquire takes the lock unless an unexpired holder exists.
func (l *SubmissionLock) Acquire(_ context.Context, sessionID uuid.UUID, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if exp, ok := l.held[sessionID]; ok && now.Before(exp) {
		return false, nil
	}
	l.held[sessionID] = now.Add(ttl)
	return true, nil
}

// Release frees the lock.
func (l *SubmissionLock) Release(_ context.Context, sessionID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, sessionID)
	return nil
}
