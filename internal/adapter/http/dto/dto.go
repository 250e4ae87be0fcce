package dto

import "dashqard-redemption/internal/core/domain"

// SelectMethodRequest is the request body for choosing a redemption method.
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required,redemption_method"`
}

// PhoneRequest carries a phone number as typed. Partial numbers are accepted;
// the session decides when a number is long enough to act on.
type PhoneRequest struct {
	Phone string `json:"phone" binding:"max=20,gh_phone"`
}

// VendorSearchRequest is the request body for the vendor name search box.
type VendorSearchRequest struct {
	Query string `json:"query" binding:"max=100"`
}

// SelectVendorRequest picks one vendor from the search results.
type SelectVendorRequest struct {
	VendorID int64 `json:"vendor_id" binding:"required,gt=0"`
}

// SelectBranchRequest picks one of the selected vendor's branches.
type SelectBranchRequest struct {
	BranchID int64 `json:"branch_id" binding:"required,gt=0"`
}

// SelectCardTypeRequest picks a product line.
type SelectCardTypeRequest struct {
	CardType string `json:"card_type" binding:"required,card_type"`
}

// SelectCardRequest picks a concrete DashX or DashPass card.
type SelectCardRequest struct {
	CardID int64 `json:"card_id" binding:"required,gt=0"`
}

// AmountRequest carries the amount field as typed.
type AmountRequest struct {
	Amount string `json:"amount" binding:"max=20"`
}

// RatingRequest carries a star rating. Zero is passed through so the
// service can reject it with its own error code.
type RatingRequest struct {
	Rating int `json:"rating" binding:"min=0,max=5"`
}

// SessionResponse is a redemption session plus the values a client needs to
// render it without re-deriving the rules.
type SessionResponse struct {
	domain.Session
	CardsForSelection   []domain.VendorCard `json:"cards_for_selection"`
	InsufficientBalance bool                `json:"insufficient_balance"`
	CanSubmit           bool                `json:"can_submit"`
}

// NewSessionResponse builds the session view.
func NewSessionResponse(s *domain.Session) SessionResponse {
	cards := s.CardsForSelection()
	if cards == nil {
		cards = []domain.VendorCard{}
	}
	return SessionResponse{
		Session:             *s,
		CardsForSelection:   cards,
		InsufficientBalance: s.InsufficientBalance(),
		CanSubmit:           s.CanSubmit(),
	}
}

// ProviderResponse is the result of mobile money provider detection.
type ProviderResponse struct {
	Local         string                     `json:"local"`
	International string                     `json:"international"`
	Provider      domain.MobileMoneyProvider `json:"provider,omitempty"`
	Recognized    bool                       `json:"recognized"`
}

// EventListResponse wraps a session's audit trail.
type EventListResponse struct {
	Events []domain.RedemptionEvent `json:"events"`
	Total  int                      `json:"total"`
}

// ProviderQuery is the query string of the provider detection endpoint.
type ProviderQuery struct {
	Phone string `form:"phone" binding:"required,gh_phone"`
}
