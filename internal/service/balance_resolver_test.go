package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	redisstore "dashqard-redemption/internal/adapter/storage/redis"
	"dashqard-redemption/internal/core/domain"
	"dashqard-redemption/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCachedResolver(t *testing.T) (*BalanceResolverImpl, *mocks.MockPlatformClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	platform := mocks.NewMockPlatformClient(gomock.NewController(t))
	resolver := NewBalanceResolver(platform, redisstore.NewAmountCache(client),
		NewBlake2bFingerprinter("k"), time.Minute, newTestLogger())
	return resolver, platform, mr
}

func dashGoPlan() domain.BalancePlan {
	return domain.BalancePlan{
		Kind:         domain.BalanceSourceAmounts,
		CardType:     domain.CardTypeDashGo,
		Params:       domain.AmountQueryParams{PhoneNumber: "0241234567", BranchID: int64Ptr(7), VendorID: int64Ptr(3)},
		MirrorDashGo: true,
	}
}

func TestBalanceResolver_NoPlan(t *testing.T) {
	resolver, _, _ := newCachedResolver(t)

	out, err := resolver.Resolve(context.Background(), domain.BalancePlan{})
	require.NoError(t, err)
	assert.Nil(t, out.Balance)
	assert.Nil(t, out.Amounts)
}

func TestBalanceResolver_DirectLookupNotCached(t *testing.T) {
	resolver, platform, _ := newCachedResolver(t)
	plan := domain.BalancePlan{
		Kind:     domain.BalanceSourceDirect,
		CardType: domain.CardTypeDashPass,
		Params:   domain.AmountQueryParams{PhoneNumber: "0241234567"},
	}

	platform.EXPECT().GetCardBalance(gomock.Any(), domain.CardTypeDashPass, "0241234567").
		Return(float64Ptr(15), nil).Times(2)

	for i := 0; i < 2; i++ {
		out, err := resolver.Resolve(context.Background(), plan)
		require.NoError(t, err)
		assert.Equal(t, 15.0, *out.Balance)
		assert.Nil(t, out.Amounts)
	}
}

func TestBalanceResolver_AmountsCached(t *testing.T) {
	resolver, platform, mr := newCachedResolver(t)
	plan := dashGoPlan()

	platform.EXPECT().GetRecipientAmounts(gomock.Any(), domain.CardTypeDashGo, plan.Params).
		Return(&domain.RecipientAmounts{
			CardType: domain.CardTypeDashGo,
			Balance:  float64Ptr(0),
			Cards:    []domain.VendorCard{{CardID: 99, CardType: domain.CardTypeDashGo}},
		}, nil).
		Times(1)

	first, err := resolver.Resolve(context.Background(), plan)
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), plan)
	require.NoError(t, err)

	require.NotNil(t, second.Balance)
	assert.Equal(t, 0.0, *second.Balance, "cached zero balance stays zero")
	assert.Equal(t, first.Amounts.FirstCardID(), second.Amounts.FirstCardID())

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], ":dashgo:7:3")
	assert.NotContains(t, keys[0], "0241234567", "raw phone never appears in cache keys")
}

func TestBalanceResolver_ScopesAreSeparate(t *testing.T) {
	resolver, platform, _ := newCachedResolver(t)
	other := dashGoPlan()
	other.Params.BranchID = int64Ptr(8)

	platform.EXPECT().GetRecipientAmounts(gomock.Any(), domain.CardTypeDashGo, gomock.Any()).
		Return(&domain.RecipientAmounts{CardType: domain.CardTypeDashGo, Balance: float64Ptr(1)}, nil).
		Times(2)

	_, err := resolver.Resolve(context.Background(), dashGoPlan())
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), other)
	require.NoError(t, err)
}

func TestBalanceResolver_ErrorsNotCached(t *testing.T) {
	resolver, platform, mr := newCachedResolver(t)

	gomock.InOrder(
		platform.EXPECT().GetRecipientAmounts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("platform returned status 502")),
		platform.EXPECT().GetRecipientAmounts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.RecipientAmounts{CardType: domain.CardTypeDashGo, Balance: float64Ptr(3)}, nil),
	)

	_, err := resolver.Resolve(context.Background(), dashGoPlan())
	require.Error(t, err)
	assert.Empty(t, mr.Keys())

	out, err := resolver.Resolve(context.Background(), dashGoPlan())
	require.NoError(t, err)
	assert.Equal(t, 3.0, *out.Balance)
}

func TestBalanceResolver_CoalescesConcurrentQueries(t *testing.T) {
	resolver, platform, _ := newCachedResolver(t)

	release := make(chan struct{})
	platform.EXPECT().GetRecipientAmounts(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.CardType, domain.AmountQueryParams) (*domain.RecipientAmounts, error) {
			<-release
			return &domain.RecipientAmounts{CardType: domain.CardTypeDashGo, Balance: float64Ptr(42)}, nil
		}).
		Times(1)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]float64, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := resolver.Resolve(context.Background(), dashGoPlan())
			if err == nil && out.Balance != nil {
				results[i] = *out.Balance
			}
		}(i)
	}

	time.Sleep(30 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 42.0, r)
	}
}

func TestBalanceResolver_CorruptCacheEntryIgnored(t *testing.T) {
	resolver, platform, mr := newCachedResolver(t)
	plan := dashGoPlan()
	require.NoError(t, mr.Set("dqr:amounts:"+resolver.cacheKey(plan), "{not json"))

	platform.EXPECT().GetRecipientAmounts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.RecipientAmounts{CardType: domain.CardTypeDashGo, Balance: float64Ptr(9)}, nil)

	out, err := resolver.Resolve(context.Background(), plan)
	require.NoError(t, err)
	assert.Equal(t, 9.0, *out.Balance)
}

func TestBalanceResolver_NilCache(t *testing.T) {
	platform := mocks.NewMockPlatformClient(gomock.NewController(t))
	resolver := NewBalanceResolver(platform, nil, NewBlake2bFingerprinter(""), time.Minute, newTestLogger())

	platform.EXPECT().GetRecipientAmounts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.RecipientAmounts{CardType: domain.CardTypeDashGo}, nil).Times(2)

	for i := 0; i < 2; i++ {
		out, err := resolver.Resolve(context.Background(), dashGoPlan())
		require.NoError(t, err)
		assert.Nil(t, out.Balance)
	}
}
