package domain

import "strings"

// RedemptionMethod is how the redeeming vendor is identified.
type RedemptionMethod string

const (
	MethodVendorMobileMoney RedemptionMethod = "vendor_mobile_money"
	MethodVendorID          RedemptionMethod = "vendor_id"
)

// IsValid reports whether m is a known redemption method.
func (m RedemptionMethod) IsValid() bool {
	return m == MethodVendorMobileMoney || m == MethodVendorID
}

// CardType is a gift card product line. Values are always lower-case.
type CardType string

const (
	CardTypeDashGo   CardType = "dashgo"
	CardTypeDashPro  CardType = "dashpro"
	CardTypeDashX    CardType = "dashx"
	CardTypeDashPass CardType = "dashpass"
)

// AllCardTypes lists the card types offered for vendor_id redemption, in display order.
var AllCardTypes = []CardType{CardTypeDashGo, CardTypeDashPro, CardTypeDashX, CardTypeDashPass}

// ParseCardType normalizes s ("DashX", "dash_x", " dashx ") to a CardType.
// ok is false for anything that is not one of the four product lines.
func ParseCardType(s string) (CardType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
	ct := CardType(normalized)
	return ct, ct.IsValid()
}

// IsValid reports whether c is one of the four product lines.
func (c CardType) IsValid() bool {
	switch c {
	case CardTypeDashGo, CardTypeDashPro, CardTypeDashX, CardTypeDashPass:
		return true
	}
	return false
}

// RequiresCardSelection is true for product lines redeemed per concrete card.
func (c CardType) RequiresCardSelection() bool {
	return c == CardTypeDashX || c == CardTypeDashPass
}

// TakesAmount is true for product lines redeemed by entering an amount.
func (c CardType) TakesAmount() bool {
	return c == CardTypeDashGo || c == CardTypeDashPro
}

// APIName is the spelling the platform expects in redemption payloads.
func (c CardType) APIName() string {
	switch c {
	case CardTypeDashGo:
		return "DashGo"
	case CardTypeDashPro:
		return "DashPro"
	case CardTypeDashX:
		return "DashX"
	case CardTypeDashPass:
		return "DashPass"
	}
	return string(c)
}

// PathSegment is the recipient-amount endpoint suffix for c (dash-go, dash-pro, ...).
func (c CardType) PathSegment() string {
	return "dash-" + strings.TrimPrefix(string(c), "dash")
}

// Step is the position of a redemption session in its linear flow.
type Step string

const (
	StepMethod  Step = "method"
	StepDetails Step = "details"
	StepSuccess Step = "success"
	StepRating  Step = "rating"
)
