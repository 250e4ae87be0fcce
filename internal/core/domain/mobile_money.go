package domain

import "strings"

// MobileMoneyProvider identifies a Ghanaian mobile money network.
type MobileMoneyProvider string

const (
	ProviderMTN        MobileMoneyProvider = "mtn"
	ProviderVodafone   MobileMoneyProvider = "vodafone"
	ProviderAirtelTigo MobileMoneyProvider = "airteltigo"
)

const ghanaCountryCode = "233"

// MinVendorPhoneDigits is the shortest vendor wallet number worth validating.
const MinVendorPhoneDigits = 9

// MinGuestPhoneDigits is the shortest guest phone number usable for balance lookups.
const MinGuestPhoneDigits = 10

var providerPrefixes = map[string]MobileMoneyProvider{
	"024": ProviderMTN,
	"054": ProviderMTN,
	"055": ProviderMTN,
	"059": ProviderMTN,
	"056": ProviderMTN,
	"020": ProviderVodafone,
	"050": ProviderVodafone,
	"027": ProviderAirtelTigo,
	"057": ProviderAirtelTigo,
	"026": ProviderAirtelTigo,
	"028": ProviderAirtelTigo,
	"029": ProviderAirtelTigo,
}

// DigitsOnly strips everything but ASCII digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToLocal converts +233551234567, 233551234567 or 551234567 to 0551234567.
func ToLocal(phone string) string {
	digits := DigitsOnly(phone)
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "0"):
		return digits
	case strings.HasPrefix(digits, ghanaCountryCode):
		return "0" + strings.TrimPrefix(digits, ghanaCountryCode)
	default:
		return "0" + digits
	}
}

// ToInternational converts any accepted format to 233XXXXXXXXX (no plus sign).
func ToInternational(phone string) string {
	local := ToLocal(phone)
	if local == "" {
		return ""
	}
	return ghanaCountryCode + local[1:]
}

// LocalPrefix returns the first three digits of the local form, or "" when too short.
func LocalPrefix(phone string) string {
	local := ToLocal(phone)
	if len(local) < 3 {
		return ""
	}
	return local[:3]
}

// DetectProvider maps a phone number to its mobile money network by prefix.
func DetectProvider(phone string) (MobileMoneyProvider, bool) {
	p, ok := providerPrefixes[LocalPrefix(phone)]
	return p, ok
}
