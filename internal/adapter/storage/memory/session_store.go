// Package memory holds process-local storage adapters for single-instance and
// development deployments.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"dashqard-redemption/internal/core/domain"

	"github.com/google/uuid"
)

type entry struct {
	raw       []byte
	expiresAt time.Time
}

// SessionStore implements ports.SessionStore in process memory. Sessions are
// stored serialized so callers never share mutable state with the store.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entry
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates an in-memory session store.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns nil, nil for unknown or expired sessions.
func (s *SessionStore) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && !s.now().Before(e.expiresAt) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(e.raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

// Save stores the session and resets its TTL.
func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = entry{raw: raw, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Delete removes a session.
func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
