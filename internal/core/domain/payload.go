package domain

import (
	"net/http"
	"strings"

	"dashqard-redemption/pkg/apperror"
)

// RedemptionPayload is the body of a card redemption request. It is built at
// submission time only and never stored.
type RedemptionPayload struct {
	CardType    string  `json:"card_type"`
	PhoneNumber string  `json:"phone_number"`
	Amount      float64 `json:"amount"`
	BranchID    int64   `json:"branch_id"`
	CardID      int64   `json:"card_id"`
}

// RedemptionResult is the platform's answer to a redemption request.
type RedemptionResult struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
}

// Succeeded applies the platform's success convention: status "success" or statusCode 200/201.
func (r *RedemptionResult) Succeeded() bool {
	if r == nil {
		return false
	}
	if strings.EqualFold(r.Status, "success") {
		return true
	}
	return r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated
}

// BuildPayload validates the session and assembles the type-specific redemption payload.
func BuildPayload(s Session) (RedemptionPayload, error) {
	switch s.Method {
	case MethodVendorID:
		return buildVendorIDPayload(s)
	case MethodVendorMobileMoney:
		if s.VendorValidation.Name == "" || s.VendorPhone == "" {
			return RedemptionPayload{}, apperror.ErrVendorNotResolved()
		}
		if amount, ok := s.ParsedAmount(); !ok || amount <= 0 {
			return RedemptionPayload{}, apperror.ErrInvalidAmount()
		}
		return RedemptionPayload{}, apperror.ErrNotImplemented("Vendor mobile money redemption")
	}
	return RedemptionPayload{}, apperror.Validation("Select a redemption method")
}

func buildVendorIDPayload(s Session) (RedemptionPayload, error) {
	if !s.CardType.IsValid() {
		return RedemptionPayload{}, apperror.ErrInvalidCardType()
	}

	var (
		card   *VendorCard
		amount float64
	)
	switch s.CardType {
	case CardTypeDashX:
		if s.SelectedCard == nil {
			return RedemptionPayload{}, apperror.ErrNoCardSelected()
		}
		card = s.SelectedCard
	case CardTypeDashPass:
		card = s.SelectedCard
		if card == nil {
			card = s.AmountQueries[CardTypeDashPass].FirstCard()
		}
		if card == nil {
			return RedemptionPayload{}, apperror.ErrNoCardAvailable()
		}
	default:
		parsed, ok := s.ParsedAmount()
		if !ok || parsed <= 0 {
			return RedemptionPayload{}, apperror.ErrInvalidAmount()
		}
		amount = parsed
	}

	if card != nil {
		if len(s.Branches) > 0 && s.SelectedBranchID == nil {
			return RedemptionPayload{}, apperror.ErrBranchRequired()
		}
		amount = card.CardPrice
	}

	phone := s.EffectivePhone()
	if phone == "" {
		return RedemptionPayload{}, apperror.ErrPhoneRequired()
	}

	payload := RedemptionPayload{
		CardType:    s.CardType.APIName(),
		PhoneNumber: phone,
		Amount:      amount,
		BranchID:    resolveBranchID(s.SelectedBranchID, card, s.SelectedCard),
	}
	if card != nil {
		payload.CardID = card.CardID
	} else {
		payload.CardID = s.AmountQueries[s.CardType].FirstCardID()
	}
	return payload, nil
}

// resolveBranchID picks the selected branch, then the card's branch, then 0.
func resolveBranchID(selected *int64, cards ...*VendorCard) int64 {
	if selected != nil {
		return *selected
	}
	for _, c := range cards {
		if c != nil && c.BranchID != nil {
			return *c.BranchID
		}
	}
	return 0
}
