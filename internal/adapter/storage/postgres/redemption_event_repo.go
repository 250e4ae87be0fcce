package postgres

import (
	"context"
	"fmt"

	"dashqard-redemption/internal/core/domain"

	"github.com/google/uuid"
)

// RedemptionEventRepo implements ports.RedemptionEventRepository. The table is
// append-only.
type RedemptionEventRepo struct {
	pool Pool
}

// NewRedemptionEventRepo creates a new redemption event repository.
func NewRedemptionEventRepo(pool Pool) *RedemptionEventRepo {
	return &RedemptionEventRepo{pool: pool}
}

const eventColumns = `id, session_id, kind, method, card_type, vendor_id, branch_id, card_id,
	amount, phone_fingerprint, rating, message, client_ip, created_at`

// Create inserts a redemption event.
func (r *RedemptionEventRepo) Create(ctx context.Context, ev *domain.RedemptionEvent) error {
	query := `INSERT INTO redemption_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		ev.ID, ev.SessionID, ev.Kind, ev.Method, nullable(string(ev.CardType)),
		ev.VendorID, ev.BranchID, ev.CardID, ev.Amount,
		nullable(ev.PhoneFingerprint), ev.Rating, nullable(ev.Message), nullable(ev.ClientIP),
		ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting redemption event: %w", err)
	}
	return nil
}

// ListBySession returns the events of one session in chronological order.
func (r *RedemptionEventRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.RedemptionEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM redemption_events
		WHERE session_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing redemption events: %w", err)
	}
	defer rows.Close()

	var events []domain.RedemptionEvent
	for rows.Next() {
		var (
			ev                                     domain.RedemptionEvent
			cardType, fingerprint, message, client *string
		)
		if err := rows.Scan(
			&ev.ID, &ev.SessionID, &ev.Kind, &ev.Method, &cardType,
			&ev.VendorID, &ev.BranchID, &ev.CardID, &ev.Amount,
			&fingerprint, &ev.Rating, &message, &client, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning redemption event: %w", err)
		}
		ev.CardType = domain.CardType(deref(cardType))
		ev.PhoneFingerprint = deref(fingerprint)
		ev.Message = deref(message)
		ev.ClientIP = deref(client)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating redemption events: %w", err)
	}
	return events, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
