package platform

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"dashqard-redemption/internal/core/domain"
)

// Platform endpoints answer either with a bare object or wrapped in {"data": ...},
// and field names drift between endpoints. Each adapter below maps the known
// variants of one endpoint to a single domain type.

// balanceFields is the probe order for every balance-bearing response.
var balanceFields = []string{"total_balance", "balance", "amount"}

// ProbeBalance returns the first non-null balance field, checking data.<f>
// before <f> for each field name in priority order. An explicit zero wins over
// any lower-priority field. A value that does not coerce to a number yields nil.
func ProbeBalance(body any) *float64 {
	root, _ := body.(map[string]any)
	if root == nil {
		return nil
	}
	data, _ := root["data"].(map[string]any)
	for _, field := range balanceFields {
		if data != nil {
			if v, ok := data[field]; ok && v != nil {
				return coerceNumber(v)
			}
		}
		if v, ok := root[field]; ok && v != nil {
			return coerceNumber(v)
		}
	}
	return nil
}

// coerceNumber converts a decoded JSON value to a number the way a loosely typed
// client would: numeric strings parse, empty strings are zero, booleans are 1 or 0,
// and objects, arrays and unparseable strings have no numeric value.
func coerceNumber(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			f = 0
			break
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	case bool:
		if t {
			f = 1
		}
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func coerceInt(v any) (int64, bool) {
	n := coerceNumber(v)
	if n == nil {
		return 0, false
	}
	return int64(*n), true
}

func optionalInt(v any) *int64 {
	if v == nil {
		return nil
	}
	n, ok := coerceInt(v)
	if !ok {
		return nil
	}
	return &n
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}

// first returns the first non-nil value among keys of m.
func first(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// unwrap returns body.data when present, else body.
func unwrap(body any) any {
	if m, ok := body.(map[string]any); ok {
		if data, ok := m["data"]; ok && data != nil {
			return data
		}
	}
	return body
}

// ProbeCards extracts the card list from data.cards, cards, or a bare data array.
func ProbeCards(body any) []domain.VendorCard {
	var raw []any
	if root, ok := body.(map[string]any); ok {
		switch data := root["data"].(type) {
		case map[string]any:
			raw, _ = data["cards"].([]any)
		case []any:
			raw = data
		}
		if raw == nil {
			raw, _ = root["cards"].([]any)
		}
	}
	return parseCards(raw)
}

func parseCards(raw []any) []domain.VendorCard {
	cards := make([]domain.VendorCard, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cards = append(cards, parseCard(m))
	}
	return cards
}

func parseCard(m map[string]any) domain.VendorCard {
	c := domain.VendorCard{
		CardName:       str(first(m, "card_name", "name")),
		CardType:       domain.CardType(strings.ToLower(str(first(m, "card_type", "type")))),
		Currency:       str(m["currency"]),
		Status:         str(m["status"]),
		BranchID:       optionalInt(m["branch_id"]),
		BranchName:     str(m["branch_name"]),
		BranchLocation: str(m["branch_location"]),
		VendorID:       optionalInt(m["vendor_id"]),
		VendorName:     str(m["vendor_name"]),
		RecipientID:    optionalInt(m["recipient_id"]),
	}
	if id, ok := coerceInt(first(m, "card_id", "id")); ok {
		c.CardID = id
	}
	if price := coerceNumber(first(m, "card_price", "price")); price != nil {
		c.CardPrice = *price
	}
	return c
}

// ProbeRecipientAmounts maps a recipient-amount response to its balance and cards.
func ProbeRecipientAmounts(cardType domain.CardType, body any) *domain.RecipientAmounts {
	return &domain.RecipientAmounts{
		CardType: cardType,
		Balance:  ProbeBalance(body),
		Cards:    ProbeCards(body),
	}
}

// ProbeVendors extracts vendors from a bare array, data, data.vendors, data.data or vendors.
func ProbeVendors(body any) []domain.Vendor {
	var raw []any
	switch root := body.(type) {
	case []any:
		raw = root
	case map[string]any:
		switch data := root["data"].(type) {
		case []any:
			raw = data
		case map[string]any:
			if list, ok := data["vendors"].([]any); ok {
				raw = list
			} else {
				raw, _ = data["data"].([]any)
			}
		}
		if raw == nil {
			raw, _ = root["vendors"].([]any)
		}
	}

	vendors := make([]domain.Vendor, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := coerceInt(first(m, "vendor_id", "id"))
		if !ok {
			continue
		}
		v := domain.Vendor{
			VendorID: id,
			Name:     str(first(m, "business_name", "vendor_name", "name")),
			GVID:     str(m["gvid"]),
			Country:  str(m["country"]),
		}
		if branches, ok := m["branches_with_cards"].([]any); ok {
			for _, b := range branches {
				bm, ok := b.(map[string]any)
				if !ok {
					continue
				}
				branchID, ok := coerceInt(first(bm, "branch_id", "id"))
				if !ok {
					continue
				}
				cards, _ := bm["cards"].([]any)
				v.BranchesWithCards = append(v.BranchesWithCards, domain.BranchWithCards{
					Branch: domain.Branch{
						BranchID:       branchID,
						BranchName:     str(first(bm, "branch_name", "name")),
						BranchLocation: str(first(bm, "branch_location", "location")),
					},
					Cards: parseCards(cards),
				})
			}
		}
		if cards, ok := m["vendor_cards"].([]any); ok {
			v.VendorCards = parseCards(cards)
		}
		vendors = append(vendors, v)
	}
	return vendors
}

// ProbeAccountName returns the wallet holder name from data.vendor_name,
// data.account_name, vendor_name or account_name.
func ProbeAccountName(body any) string {
	root, _ := body.(map[string]any)
	if root == nil {
		return ""
	}
	if data, ok := root["data"].(map[string]any); ok {
		if name := strings.TrimSpace(str(first(data, "vendor_name", "account_name"))); name != "" {
			return name
		}
	}
	return strings.TrimSpace(str(first(root, "vendor_name", "account_name")))
}

// ProbeRedemptionResult reads status, statusCode and message. The HTTP status
// stands in for statusCode only when the body carries neither field.
func ProbeRedemptionResult(body any, httpStatus int) *domain.RedemptionResult {
	res := &domain.RedemptionResult{}
	root, _ := body.(map[string]any)
	if root == nil {
		res.StatusCode = httpStatus
		return res
	}
	res.Status = str(root["status"])
	if code, ok := coerceInt(first(root, "statusCode", "status_code")); ok {
		res.StatusCode = int(code)
	} else if res.Status == "" {
		res.StatusCode = httpStatus
	}
	res.Message = str(root["message"])
	if res.Message == "" {
		if data, ok := unwrap(body).(map[string]any); ok {
			res.Message = str(data["message"])
		}
	}
	return res
}

// errorMessage extracts a human readable message from an error response body.
func errorMessage(body any) string {
	root, _ := body.(map[string]any)
	if root == nil {
		return ""
	}
	if msg := str(first(root, "message", "error")); msg != "" {
		return msg
	}
	if e, ok := root["error"].(map[string]any); ok {
		return str(e["message"])
	}
	return ""
}
