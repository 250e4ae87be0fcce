package service

import (
	"context"
	"errors"
	"time"

	"dashqard-redemption/internal/core/domain"
	"dashqard-redemption/internal/core/ports"
	"dashqard-redemption/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultRejectionMessage = "Redemption was not accepted. Please try again."

// RedemptionOptions tunes the redemption workflow.
type RedemptionOptions struct {
	Debounce         time.Duration // quiet period before vendor validation and search
	SubmitLockTTL    time.Duration
	VendorSearchSize int
}

// RedemptionServiceImpl implements ports.RedemptionService.
//
// Every state change goes through domain.Reduce under a per-session lock. The
// lock is released while upstream calls are in flight; their results carry the
// request token issued when the call started and are dropped if the session
// moved on in the meantime.
type RedemptionServiceImpl struct {
	sessions    ports.SessionStore
	platform    ports.PlatformClient
	balances    ports.BalanceResolver
	submitLock  ports.SubmissionLock
	amountCache ports.AmountCache
	events      ports.RedemptionEventRepository
	audit       ports.AuditService
	fp          ports.Fingerprinter
	opts        RedemptionOptions

	locks     *sessionLocks
	debouncer *Debouncer
	bg        context.Context
	stop      context.CancelFunc
	now       func() time.Time
	log       zerolog.Logger
}

// NewRedemptionService creates a new RedemptionServiceImpl. amountCache and
// events may be nil.
func NewRedemptionService(
	sessions ports.SessionStore,
	platform ports.PlatformClient,
	balances ports.BalanceResolver,
	submitLock ports.SubmissionLock,
	amountCache ports.AmountCache,
	events ports.RedemptionEventRepository,
	audit ports.AuditService,
	fp ports.Fingerprinter,
	opts RedemptionOptions,
	log zerolog.Logger,
) *RedemptionServiceImpl {
	bg, stop := context.WithCancel(context.Background())
	return &RedemptionServiceImpl{
		sessions:    sessions,
		platform:    platform,
		balances:    balances,
		submitLock:  submitLock,
		amountCache: amountCache,
		events:      events,
		audit:       audit,
		fp:          fp,
		opts:        opts,
		locks:       newSessionLocks(),
		debouncer:   NewDebouncer(opts.Debounce),
		bg:          bg,
		stop:        stop,
		now:         time.Now,
		log:         log.With().Str("component", "redemption").Logger(),
	}
}

// Close cancels pending debounced lookups and waits for running ones.
func (s *RedemptionServiceImpl) Close() {
	s.stop()
	s.debouncer.Stop()
}

// Start opens a new session at the method step.
func (s *RedemptionServiceImpl) Start(ctx context.Context, userPhone string) (*domain.Session, error) {
	sess := domain.NewSession(uuid.New(), userPhone, s.now())
	if err := s.save(ctx, &sess); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Bool("signed_in", sess.UserPhone != "").
		Msg("redemption session started")
	return &sess, nil
}

// Get returns the current session.
func (s *RedemptionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.load(ctx, id)
}

// Apply runs one user action, then schedules debounced lookups and recomputes
// the balance when the action invalidated it.
func (s *RedemptionServiceImpl) Apply(ctx context.Context, id uuid.UUID, action domain.Action) (*domain.Session, error) {
	unlock := s.locks.lock(id)
	sess, err := s.load(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}
	next, err := domain.Reduce(*sess, action)
	if err != nil {
		unlock()
		return nil, err
	}
	if err := s.save(ctx, &next); err != nil {
		unlock()
		return nil, err
	}
	s.scheduleLookups(id, action, next)
	unlock()

	if _, ok := action.(domain.EnterVendorPhone); ok && len(next.VendorPhone) >= domain.MinVendorPhoneDigits {
		if _, known := domain.DetectProvider(next.VendorPhone); !known {
			return nil, apperror.ErrUnrecognizedProvider(domain.LocalPrefix(next.VendorPhone))
		}
	}

	if next.BalanceToken != sess.BalanceToken {
		return s.resolveBalance(ctx, id)
	}
	return &next, nil
}

// RefreshBalance drops cached amount queries for the session's phone and
// resolves the balance again.
func (s *RedemptionServiceImpl) RefreshBalance(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateAmounts(ctx, sess.EffectivePhone())
	return s.resolveBalance(ctx, id)
}

// Submit builds the redemption payload from the session and sends it. Only one
// submit per session may be in flight.
func (s *RedemptionServiceImpl) Submit(ctx context.Context, id uuid.UUID, clientIP string) (*domain.Session, error) {
	acquired, err := s.submitLock.Acquire(ctx, id, s.opts.SubmitLockTTL)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	if !acquired {
		return nil, apperror.ErrSubmissionInProgress()
	}
	defer func() {
		if err := s.submitLock.Release(context.WithoutCancel(ctx), id); err != nil {
			s.log.Warn().Err(err).Str("session_id", id.String()).Msg("releasing submission lock")
		}
	}()

	unlock := s.locks.lock(id)
	sess, err := s.load(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}
	if sess.Step != domain.StepDetails {
		unlock()
		return nil, apperror.ErrInvalidTransition(string(sess.Step), "Submit")
	}
	if sess.InsufficientBalance() {
		unlock()
		return nil, apperror.ErrInsufficientBalance()
	}
	payload, err := domain.BuildPayload(*sess)
	if err != nil {
		unlock()
		return nil, err
	}
	snapshot := *sess
	unlock()

	log := s.log.With().
		Str("session_id", id.String()).
		Str("card_type", payload.CardType).
		Str("phone_fp", s.fp.Fingerprint(payload.PhoneNumber)).
		Logger()

	s.audit.Record(ctx, s.event(domain.EventRedemptionSubmitted, snapshot, payload, clientIP))

	var (
		outcome domain.Action
		failure *apperror.AppError
	)
	res, callErr := s.platform.RedeemCards(ctx, payload)
	switch {
	case callErr != nil:
		failure = apperror.ErrRedemptionFailed(callErr)
		outcome = domain.RedemptionFailed{Message: failure.Message}
		log.Error().Err(callErr).Msg("redemption call failed")
	case !res.Succeeded():
		msg := res.Message
		if msg == "" {
			msg = defaultRejectionMessage
		}
		failure = apperror.ErrRedemptionRejected(msg)
		outcome = domain.RedemptionFailed{Message: msg}
		log.Warn().Str("status", res.Status).Int("status_code", res.StatusCode).Str("reason", msg).Msg("redemption rejected")
	default:
		outcome = domain.RedemptionSucceeded{CardID: payload.CardID}
		log.Info().Int64("card_id", payload.CardID).Float64("amount", payload.Amount).Msg("redemption succeeded")
	}

	ev := s.event(domain.EventRedemptionSucceeded, snapshot, payload, clientIP)
	if failure != nil {
		ev.Kind = domain.EventRedemptionFailed
		ev.Message = failure.Message
	} else if res != nil {
		ev.Message = res.Message
	}
	s.audit.Record(ctx, ev)

	// The upstream call has happened; record it even if the caller is gone.
	persistCtx := context.WithoutCancel(ctx)
	if failure == nil {
		s.invalidateAmounts(persistCtx, payload.PhoneNumber)
	}

	unlock = s.locks.lock(id)
	defer unlock()
	sess, err = s.load(persistCtx, id)
	if err != nil {
		if failure != nil {
			return nil, failure
		}
		return nil, err
	}
	next, err := domain.Reduce(*sess, outcome)
	if err != nil {
		log.Warn().Err(err).Msg("session changed during submission, outcome not applied")
		if failure != nil {
			return nil, failure
		}
		return sess, nil
	}
	if err := s.save(persistCtx, &next); err != nil {
		return nil, err
	}
	if failure != nil {
		return nil, failure
	}
	return &next, nil
}

// SubmitRating sends the user's 1-5 star rating for the redeemed card and
// returns the session to the success step.
func (s *RedemptionServiceImpl) SubmitRating(ctx context.Context, id uuid.UUID, rating int, clientIP string) (*domain.Session, error) {
	if err := domain.ValidateRating(rating); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(id)
	sess, err := s.load(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}
	if _, err := domain.Reduce(*sess, domain.RatingSubmitted{Rating: rating}); err != nil {
		unlock()
		return nil, err
	}
	if sess.RedeemedCardID == nil {
		unlock()
		return nil, apperror.Validation("There is no redeemed card to rate")
	}
	cardID := *sess.RedeemedCardID
	snapshot := *sess
	unlock()

	if err := s.platform.RateCard(ctx, cardID, rating); err != nil {
		s.log.Warn().Err(err).Str("session_id", id.String()).Int64("card_id", cardID).Msg("rating failed")
		return nil, apperror.ErrRatingFailed(err)
	}

	ev := s.event(domain.EventCardRated, snapshot, domain.RedemptionPayload{CardID: cardID}, clientIP)
	ev.Rating = &rating
	s.audit.Record(ctx, ev)

	next, _, err := s.applyResult(context.WithoutCancel(ctx), id, domain.RatingSubmitted{Rating: rating})
	return next, err
}

// Discard deletes the session and cancels its pending lookups.
func (s *RedemptionServiceImpl) Discard(ctx context.Context, id uuid.UUID) error {
	s.cancelLookups(id)
	if err := s.sessions.Delete(ctx, id); err != nil {
		return apperror.ErrStorage(err)
	}
	s.log.Info().Str("session_id", id.String()).Msg("redemption session discarded")
	return nil
}

// Events returns the audit trail of a session. It outlives the session itself.
func (s *RedemptionServiceImpl) Events(ctx context.Context, id uuid.UUID) ([]domain.RedemptionEvent, error) {
	if s.events == nil {
		return []domain.RedemptionEvent{}, nil
	}
	events, err := s.events.ListBySession(ctx, id)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	if events == nil {
		events = []domain.RedemptionEvent{}
	}
	return events, nil
}

// ---- lookups ----

func validationKey(id uuid.UUID) string { return "validate:" + id.String() }
func searchKey(id uuid.UUID) string     { return "search:" + id.String() }

func (s *RedemptionServiceImpl) scheduleLookups(id uuid.UUID, action domain.Action, next domain.Session) {
	switch action.(type) {
	case domain.EnterVendorPhone:
		if next.NeedsVendorValidation() {
			phone := next.VendorPhone
			s.debouncer.Trigger(validationKey(id), func() { s.validateVendor(id, phone) })
		} else {
			s.debouncer.Cancel(validationKey(id))
		}
	case domain.EnterVendorSearch:
		if next.VendorSearch != "" {
			query := next.VendorSearch
			s.debouncer.Trigger(searchKey(id), func() { s.searchVendors(id, query) })
		} else {
			s.debouncer.Cancel(searchKey(id))
		}
	case domain.SelectMethod, domain.BackToMethod, domain.Reset:
		s.cancelLookups(id)
	}
}

func (s *RedemptionServiceImpl) cancelLookups(id uuid.UUID) {
	s.debouncer.Cancel(validationKey(id))
	s.debouncer.Cancel(searchKey(id))
}

// validateVendor looks up the wallet name for phone if it is still the
// number in the session and nobody has validated it yet.
func (s *RedemptionServiceImpl) validateVendor(id uuid.UUID, phone string) {
	ctx := s.bg
	started, applied, err := s.applyResult(ctx, id, domain.VendorValidationStarted{Phone: phone})
	if err != nil || !applied {
		return
	}
	token := started.VendorValidation.Token

	provider, _ := domain.DetectProvider(phone)
	log := s.log.With().
		Str("session_id", id.String()).
		Str("provider", string(provider)).
		Str("phone_fp", s.fp.Fingerprint(phone)).
		Logger()

	name, err := s.platform.ValidateMobileMoneyAccount(ctx, domain.ToInternational(phone), provider)
	var result domain.Action
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("vendor wallet validation failed")
		result = domain.VendorValidationFailed{Token: token, Phone: phone, Reason: apperror.ErrVendorNotResolved().Message}
	case name == "":
		log.Info().Msg("vendor wallet has no registered name")
		result = domain.VendorValidationFailed{Token: token, Phone: phone, Reason: apperror.ErrVendorNotResolved().Message}
	default:
		log.Debug().Msg("vendor wallet validated")
		result = domain.VendorValidated{Token: token, Phone: phone, Provider: provider, Name: name}
	}
	_, _, _ = s.applyResult(context.WithoutCancel(ctx), id, result)
}

func (s *RedemptionServiceImpl) searchVendors(id uuid.UUID, query string) {
	ctx := s.bg
	started, applied, err := s.applyResult(ctx, id, domain.VendorSearchStarted{Query: query})
	if err != nil || !applied {
		return
	}
	token := started.VendorSearchToken

	vendors, err := s.platform.SearchVendors(ctx, query, s.opts.VendorSearchSize)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", id.String()).Msg("vendor search failed")
		vendors = nil
	}
	_, _, _ = s.applyResult(context.WithoutCancel(ctx), id, domain.VendorsLoaded{Token: token, Vendors: vendors})
}

// resolveBalance runs the balance lookup implied by the session as it is now.
func (s *RedemptionServiceImpl) resolveBalance(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	unlock := s.locks.lock(id)
	sess, err := s.load(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}
	plan := domain.PlanBalance(*sess)
	if plan.Kind == domain.BalanceSourceNone {
		unlock()
		return sess, nil
	}
	requested, err := domain.Reduce(*sess, domain.BalanceRequested{})
	if err != nil {
		unlock()
		return nil, err
	}
	if err := s.save(ctx, &requested); err != nil {
		unlock()
		return nil, err
	}
	unlock()

	outcome, lookupErr := s.balances.Resolve(ctx, plan)
	result := domain.BalanceResolved{
		Token:   requested.BalanceToken,
		Plan:    plan,
		Balance: outcome.Balance,
		Amounts: outcome.Amounts,
	}
	if lookupErr != nil {
		result.Err = apperror.ErrBalanceFetch(lookupErr).Message
		s.log.Warn().Err(lookupErr).
			Str("session_id", id.String()).
			Str("source", string(plan.Kind)).
			Str("card_type", string(plan.CardType)).
			Msg("balance lookup failed")
	}
	next, _, err := s.applyResult(context.WithoutCancel(ctx), id, result)
	return next, err
}

// applyResult reduces an asynchronous result into the stored session. A stale
// result leaves the session untouched; it is returned with applied false.
func (s *RedemptionServiceImpl) applyResult(ctx context.Context, id uuid.UUID, result domain.Action) (*domain.Session, bool, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		if !apperror.HasCode(err, "SES_001") {
			s.log.Warn().Err(err).Str("session_id", id.String()).Msg("loading session for lookup result")
		}
		return nil, false, err
	}
	next, err := domain.Reduce(*sess, result)
	if errors.Is(err, domain.ErrStaleResult) {
		s.log.Debug().Str("session_id", id.String()).Msgf("dropping stale %T", result)
		return sess, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := s.save(ctx, &next); err != nil {
		s.log.Warn().Err(err).Str("session_id", id.String()).Msg("saving lookup result")
		return nil, false, err
	}
	return &next, true, nil
}

// ---- helpers ----

func (s *RedemptionServiceImpl) load(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	if sess == nil {
		return nil, apperror.ErrSessionNotFound()
	}
	return sess, nil
}

func (s *RedemptionServiceImpl) save(ctx context.Context, sess *domain.Session) error {
	sess.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return apperror.ErrStorage(err)
	}
	return nil
}

func (s *RedemptionServiceImpl) invalidateAmounts(ctx context.Context, phone string) {
	if s.amountCache == nil || phone == "" {
		return
	}
	if err := s.amountCache.Invalidate(ctx, s.fp.Fingerprint(phone)); err != nil {
		s.log.Warn().Err(err).Msg("amount cache invalidation failed")
	}
}

func (s *RedemptionServiceImpl) event(kind domain.EventKind, sess domain.Session, p domain.RedemptionPayload, clientIP string) *domain.RedemptionEvent {
	ev := domain.NewRedemptionEvent(kind, sess, p, s.now())
	phone := p.PhoneNumber
	if phone == "" {
		phone = sess.EffectivePhone()
	}
	ev.PhoneFingerprint = s.fp.Fingerprint(phone)
	ev.ClientIP = clientIP
	return ev
}
