package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dashqard-redemption/internal/core/domain"
	"dashqard-redemption/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// BalanceResolverImpl implements ports.BalanceResolver. Recipient-amount
// queries are cached briefly and identical concurrent queries share one
// upstream call. Direct card-balance lookups always go upstream.
type BalanceResolverImpl struct {
	platform ports.PlatformClient
	cache    ports.AmountCache
	fp       ports.Fingerprinter
	ttl      time.Duration
	group    singleflight.Group
	log      zerolog.Logger
}

// NewBalanceResolver creates a balance resolver. A nil cache or a zero ttl
// disables caching.
func NewBalanceResolver(
	platform ports.PlatformClient,
	cache ports.AmountCache,
	fp ports.Fingerprinter,
	ttl time.Duration,
	log zerolog.Logger,
) *BalanceResolverImpl {
	return &BalanceResolverImpl{
		platform: platform,
		cache:    cache,
		fp:       fp,
		ttl:      ttl,
		log:      log,
	}
}

// Resolve runs the lookup the plan names.
func (r *BalanceResolverImpl) Resolve(ctx context.Context, plan domain.BalancePlan) (ports.BalanceOutcome, error) {
	switch plan.Kind {
	case domain.BalanceSourceNone:
		return ports.BalanceOutcome{}, nil
	case domain.BalanceSourceDirect:
		balance, err := r.platform.GetCardBalance(ctx, plan.CardType, plan.Params.PhoneNumber)
		if err != nil {
			return ports.BalanceOutcome{}, err
		}
		return ports.BalanceOutcome{Balance: balance}, nil
	case domain.BalanceSourceAmounts:
		amounts, err := r.amounts(ctx, plan)
		if err != nil {
			return ports.BalanceOutcome{}, err
		}
		return ports.BalanceOutcome{Balance: amounts.Balance, Amounts: amounts}, nil
	}
	return ports.BalanceOutcome{}, fmt.Errorf("unknown balance source %q", plan.Kind)
}

func (r *BalanceResolverImpl) amounts(ctx context.Context, plan domain.BalancePlan) (*domain.RecipientAmounts, error) {
	key := r.cacheKey(plan)

	if cached := r.cached(ctx, key); cached != nil {
		return cached, nil
	}

	v, err, shared := r.group.Do(key, func() (any, error) {
		// The shared call must not fail because the first caller went away.
		callCtx := context.WithoutCancel(ctx)
		amounts, err := r.platform.GetRecipientAmounts(callCtx, plan.CardType, plan.Params)
		if err != nil {
			return nil, err
		}
		r.store(callCtx, key, amounts)
		return amounts, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.log.Debug().Str("card_type", string(plan.CardType)).Msg("amount query coalesced")
	}
	return v.(*domain.RecipientAmounts), nil
}

// cacheKey is "<phone fingerprint>:<card type>:<branch>:<vendor>".
func (r *BalanceResolverImpl) cacheKey(plan domain.BalancePlan) string {
	parts := []string{r.fp.Fingerprint(plan.Params.PhoneNumber), string(plan.CardType), "-", "-"}
	if plan.Params.BranchID != nil {
		parts[2] = strconv.FormatInt(*plan.Params.BranchID, 10)
	}
	if plan.Params.VendorID != nil {
		parts[3] = strconv.FormatInt(*plan.Params.VendorID, 10)
	}
	return strings.Join(parts, ":")
}

func (r *BalanceResolverImpl) cached(ctx context.Context, key string) *domain.RecipientAmounts {
	if r.cache == nil || r.ttl <= 0 {
		return nil
	}
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn().Err(err).Msg("amount cache read failed, querying platform")
		return nil
	}
	if raw == nil {
		return nil
	}
	var amounts domain.RecipientAmounts
	if err := json.Unmarshal(raw, &amounts); err != nil {
		r.log.Warn().Err(err).Msg("discarding malformed amount cache entry")
		return nil
	}
	return &amounts
}

func (r *BalanceResolverImpl) store(ctx context.Context, key string, amounts *domain.RecipientAmounts) {
	if r.cache == nil || r.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(amounts)
	if err != nil {
		r.log.Warn().Err(err).Msg("encoding amount cache entry")
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
		r.log.Warn().Err(err).Msg("amount cache write failed")
	}
}
