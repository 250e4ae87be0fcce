package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BalanceState is what the user may redeem. A nil Balance is unknown; zero is a real balance.
type BalanceState struct {
	Balance       *float64 `json:"balance"`
	DashGoBalance *float64 `json:"dash_go_balance"`
	Loading       bool     `json:"loading"`
	Error         string   `json:"error,omitempty"`
}

// VendorValidation tracks the mobile money wallet lookup for the vendor_mobile_money path.
type VendorValidation struct {
	Token          uint64              `json:"token"`
	InFlightPhone  string              `json:"in_flight_phone,omitempty"`
	ValidatedPhone string              `json:"validated_phone,omitempty"`
	Provider       MobileMoneyProvider `json:"provider,omitempty"`
	Name           string              `json:"name,omitempty"`
	Error          string              `json:"error,omitempty"`
}

// Session is the complete state of one redemption flow. It is only ever
// changed through Reduce.
type Session struct {
	ID         uuid.UUID        `json:"id"`
	Step       Step             `json:"step"`
	Method     RedemptionMethod `json:"method,omitempty"`
	UserPhone  string           `json:"user_phone,omitempty"` // from the signed-in user's profile
	GuestPhone string           `json:"guest_phone,omitempty"`

	VendorPhone      string           `json:"vendor_phone,omitempty"`
	VendorValidation VendorValidation `json:"vendor_validation"`

	VendorSearch      string   `json:"vendor_search,omitempty"`
	VendorSearchToken uint64   `json:"vendor_search_token"`
	VendorResults     []Vendor `json:"vendor_results,omitempty"`

	Vendor           *Vendor      `json:"vendor,omitempty"`
	Branches         []Branch     `json:"branches,omitempty"`
	VendorCards      []VendorCard `json:"vendor_cards,omitempty"`
	SelectedBranchID *int64       `json:"selected_branch_id,omitempty"`
	CardType         CardType     `json:"card_type,omitempty"`
	SelectedCard     *VendorCard  `json:"selected_card,omitempty"`
	Amount           string       `json:"amount,omitempty"` // raw user input

	Balance       BalanceState                   `json:"balance"`
	BalanceToken  uint64                         `json:"balance_token"`
	AmountQueries map[CardType]*RecipientAmounts `json:"amount_queries,omitempty"`

	RedeemedCardID *int64 `json:"redeemed_card_id,omitempty"`
	Rating         int    `json:"rating,omitempty"`
	LastError      string `json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession starts a flow at the method step.
func NewSession(id uuid.UUID, userPhone string, now time.Time) Session {
	return Session{
		ID:        id,
		Step:      StepMethod,
		UserPhone: DigitsOnly(userPhone),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EffectivePhone is the signed-in user's phone, else a guest phone of at least
// MinGuestPhoneDigits digits, else "".
func (s *Session) EffectivePhone() string {
	if s.UserPhone != "" {
		return s.UserPhone
	}
	if len(s.GuestPhone) >= MinGuestPhoneDigits {
		return s.GuestPhone
	}
	return ""
}

// ParsedAmount parses the entered amount. ok is false for empty, malformed or
// non-finite input.
func (s *Session) ParsedAmount() (float64, bool) {
	return ParseAmount(s.Amount)
}

// ParseAmount reads a user-typed number the way a browser's Number() does:
// decimal and exponent forms, or unsigned 0x/0o/0b integers. NaN and the
// infinities are not amounts.
func ParseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsRune(raw, '_') {
		return 0, false
	}
	if len(raw) > 2 && raw[0] == '0' {
		base := 0
		switch raw[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(raw[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	// Signed or fractional hex ("-0x10", "0x1p4") is not a number to a browser.
	if strings.ContainsAny(raw, "xXpP") {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// CardsForSelection lists the concrete cards a DashX/DashPass redemption may pick:
// the vendor's cards plus those returned by the amount query for the chosen type,
// filtered by type and, when a branch is selected, by branch. Duplicates by card_id are dropped.
func (s *Session) CardsForSelection() []VendorCard {
	if !s.CardType.RequiresCardSelection() {
		return nil
	}
	candidates := append([]VendorCard{}, s.VendorCards...)
	if q := s.AmountQueries[s.CardType]; q != nil {
		candidates = append(candidates, q.Cards...)
	}

	seen := make(map[int64]struct{}, len(candidates))
	var cards []VendorCard
	for _, c := range candidates {
		if c.CardType != s.CardType {
			continue
		}
		if s.SelectedBranchID != nil && !c.InBranch(*s.SelectedBranchID) {
			continue
		}
		if _, dup := seen[c.CardID]; dup {
			continue
		}
		seen[c.CardID] = struct{}{}
		cards = append(cards, c)
	}
	return cards
}

// InsufficientBalance is true when an amount-based redemption asks for more than a known balance.
func (s *Session) InsufficientBalance() bool {
	if !s.CardType.TakesAmount() || s.Balance.Balance == nil {
		return false
	}
	amount, ok := s.ParsedAmount()
	return ok && amount > 0 && amount > *s.Balance.Balance
}

// CanSubmit reports whether Submit would build a payload without a validation error.
func (s *Session) CanSubmit() bool {
	if s.Step != StepDetails || s.Method != MethodVendorID || s.Balance.Loading {
		return false
	}
	if s.InsufficientBalance() {
		return false
	}
	_, err := BuildPayload(*s)
	return err == nil
}

// BalanceSourceKind says which endpoint family answers a balance question.
type BalanceSourceKind string

const (
	BalanceSourceNone    BalanceSourceKind = ""
	BalanceSourceAmounts BalanceSourceKind = "recipient_amounts"
	BalanceSourceDirect  BalanceSourceKind = "card_balance"
)

// AmountQueryParams scopes a recipient-amount query.
type AmountQueryParams struct {
	PhoneNumber string `json:"phone_number"`
	BranchID    *int64 `json:"branch_id,omitempty"`
	VendorID    *int64 `json:"vendor_id,omitempty"`
}

// BalancePlan is the single balance lookup implied by the current session state.
type BalancePlan struct {
	Kind         BalanceSourceKind
	CardType     CardType
	Params       AmountQueryParams
	MirrorDashGo bool // also publish the result as DashGoBalance
}

// PlanBalance applies the resolution rules, in priority order:
//  1. no usable phone: nothing to query
//  2. vendor_mobile_money: DashPro amounts
//  3. vendor_id with a selected card: by the card's type (DashX/DashPass use the direct lookup)
//  4. vendor_id with only a card type: that type's amount query
func PlanBalance(s Session) BalancePlan {
	phone := s.EffectivePhone()
	if phone == "" {
		return BalancePlan{}
	}

	switch s.Method {
	case MethodVendorMobileMoney:
		return amountsPlan(s, CardTypeDashPro, phone)
	case MethodVendorID:
		if s.SelectedCard != nil {
			switch s.SelectedCard.CardType {
			case CardTypeDashGo, CardTypeDashPro:
				return amountsPlan(s, s.SelectedCard.CardType, phone)
			default:
				return BalancePlan{
					Kind:     BalanceSourceDirect,
					CardType: s.SelectedCard.CardType,
					Params:   AmountQueryParams{PhoneNumber: phone},
				}
			}
		}
		if s.CardType.IsValid() {
			return amountsPlan(s, s.CardType, phone)
		}
	}
	return BalancePlan{}
}

func amountsPlan(s Session, ct CardType, phone string) BalancePlan {
	plan := BalancePlan{
		Kind:         BalanceSourceAmounts,
		CardType:     ct,
		Params:       AmountQueryParams{PhoneNumber: phone},
		MirrorDashGo: ct == CardTypeDashGo,
	}
	// DashPro balances are scoped to the phone only.
	if ct != CardTypeDashPro {
		plan.Params.BranchID = s.SelectedBranchID
		if s.Vendor != nil {
			vendorID := s.Vendor.VendorID
			plan.Params.VendorID = &vendorID
		}
	}
	return plan
}
