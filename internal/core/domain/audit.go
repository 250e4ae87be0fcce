package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind is the kind of redemption event recorded in the audit log.
type EventKind string

const (
	EventRedemptionSubmitted EventKind = "REDEMPTION_SUBMITTED"
	EventRedemptionSucceeded EventKind = "REDEMPTION_SUCCEEDED"
	EventRedemptionFailed    EventKind = "REDEMPTION_FAILED"
	EventCardRated           EventKind = "CARD_RATED"
)

// RedemptionEvent records one submission or rating outcome. Phone numbers are
// stored as keyed fingerprints only.
type RedemptionEvent struct {
	ID               uuid.UUID        `json:"id"`
	SessionID        uuid.UUID        `json:"session_id"`
	Kind             EventKind        `json:"kind"`
	Method           RedemptionMethod `json:"method"`
	CardType         CardType         `json:"card_type,omitempty"`
	VendorID         *int64           `json:"vendor_id,omitempty"`
	BranchID         *int64           `json:"branch_id,omitempty"`
	CardID           *int64           `json:"card_id,omitempty"`
	Amount           *float64         `json:"amount,omitempty"`
	PhoneFingerprint string           `json:"phone_fingerprint,omitempty"`
	Rating           *int             `json:"rating,omitempty"`
	Message          string           `json:"message,omitempty"`
	ClientIP         string           `json:"client_ip,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// NewRedemptionEvent builds an event for a submitted payload.
func NewRedemptionEvent(kind EventKind, s Session, p RedemptionPayload, now time.Time) *RedemptionEvent {
	ev := &RedemptionEvent{
		ID:        uuid.New(),
		SessionID: s.ID,
		Kind:      kind,
		Method:    s.Method,
		CardType:  s.CardType,
		CreatedAt: now,
	}
	if s.Vendor != nil {
		id := s.Vendor.VendorID
		ev.VendorID = &id
	}
	if p.BranchID > 0 {
		id := p.BranchID
		ev.BranchID = &id
	}
	if p.CardID > 0 {
		id := p.CardID
		ev.CardID = &id
	}
	if p.Amount > 0 {
		amount := p.Amount
		ev.Amount = &amount
	}
	return ev
}
