package ports

import (
	"context"
	"time"

	"dashqard-redemption/internal/core/domain"

	"github.com/google/uuid"
)

// --- Upstream platform ---

// PlatformClient is the gift card platform REST API. Implementations map every
// response shape variant to the canonical domain types.
type PlatformClient interface {
	// ValidateMobileMoneyAccount returns the wallet's registered name. phone is in
	// international format. An empty name with a nil error means the account has no name.
	ValidateMobileMoneyAccount(ctx context.Context, phone string, provider domain.MobileMoneyProvider) (string, error)
	SearchVendors(ctx context.Context, query string, limit int) ([]domain.Vendor, error)
	GetRecipientAmounts(ctx context.Context, cardType domain.CardType, params domain.AmountQueryParams) (*domain.RecipientAmounts, error)
	GetCardBalance(ctx context.Context, cardType domain.CardType, phone string) (*float64, error)
	RedeemCards(ctx context.Context, payload domain.RedemptionPayload) (*domain.RedemptionResult, error)
	RateCard(ctx context.Context, cardID int64, rating int) error
}

// --- Supporting services ---

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID string, phone string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID string
	Phone  string // the user's stored phone number, may be empty
}

// AuditService records redemption events without blocking the caller.
type AuditService interface {
	Record(ctx context.Context, event *domain.RedemptionEvent)
}

// Fingerprinter derives a stable keyed digest of a phone number for logs,
// cache keys and audit records.
type Fingerprinter interface {
	Fingerprint(phone string) string
}

// BalanceResolver answers the balance question implied by a plan.
type BalanceResolver interface {
	Resolve(ctx context.Context, plan domain.BalancePlan) (BalanceOutcome, error)
}

// BalanceOutcome is the normalized result of one balance lookup.
type BalanceOutcome struct {
	Balance *float64
	Amounts *domain.RecipientAmounts // nil for direct card-balance lookups
}

// --- Service Ports (Business Logic) ---

// RedemptionService drives redemption sessions. Every method returns the
// session as it stands after the call.
type RedemptionService interface {
	Start(ctx context.Context, userPhone string) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// Apply runs one user action and its follow-up lookups: debounced vendor
	// validation or search, and balance recomputation.
	Apply(ctx context.Context, id uuid.UUID, action domain.Action) (*domain.Session, error)
	RefreshBalance(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Submit(ctx context.Context, id uuid.UUID, clientIP string) (*domain.Session, error)
	SubmitRating(ctx context.Context, id uuid.UUID, rating int, clientIP string) (*domain.Session, error)
	Discard(ctx context.Context, id uuid.UUID) error
	Events(ctx context.Context, id uuid.UUID) ([]domain.RedemptionEvent, error)
}
