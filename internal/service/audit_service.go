package service

import (
	"context"
	"sync"
	"time"

	"dashqard-redemption/internal/core/domain"
	"dashqard-redemption/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const (
	auditMaxAttempts  = 3
	auditWriteTimeout = 5 * time.Second
)

// AuditRecorder implements ports.AuditService. Events are logged immediately
// and persisted in the background with a few retries.
type AuditRecorder struct {
	repo    ports.RedemptionEventRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
	backoff func() backoff.BackOff
}

// NewAuditService creates a new audit recorder.
// If repo is nil, events are only written to the logger.
func NewAuditService(repo ports.RedemptionEventRepository, log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{
		repo: repo,
		log:  log,
		backoff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(200*time.Millisecond),
			), auditMaxAttempts-1)
		},
	}
}

// Record logs the event and persists it asynchronously (fire-and-forget).
func (s *AuditRecorder) Record(_ context.Context, ev *domain.RedemptionEvent) {
	s.log.Info().
		Str("event_id", ev.ID.String()).
		Str("session_id", ev.SessionID.String()).
		Str("kind", string(ev.Kind)).
		Str("method", string(ev.Method)).
		Str("card_type", string(ev.CardType)).
		Str("phone_fp", ev.PhoneFingerprint).
		Str("ip", ev.ClientIP).
		Msg("redemption audit")

	if s.repo == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.persist(ev)
	}()
}

// persist writes the event, retrying transient failures. The request context
// is not used because the write outlives the request.
func (s *AuditRecorder) persist(ev *domain.RedemptionEvent) {
	attempt := 0
	op := func() error {
		attempt++
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		return s.repo.Create(ctx, ev)
	}
	notify := func(err error, wait time.Duration) {
		s.log.Warn().Err(err).
			Str("event_id", ev.ID.String()).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("audit: persist failed, retrying")
	}
	if err := backoff.RetryNotify(op, s.backoff(), notify); err != nil {
		s.log.Error().Err(err).
			Str("event_id", ev.ID.String()).
			Str("kind", string(ev.Kind)).
			Msg("audit: event dropped")
	}
}

// Wait blocks until background writes finish or ctx is done.
func (s *AuditRecorder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
