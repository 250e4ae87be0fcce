package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name   string
		phone  string
		want   MobileMoneyProvider
		wantOK bool
	}{
		{"mtn local", "0241234567", ProviderMTN, true},
		{"mtn 059", "0591234567", ProviderMTN, true},
		{"vodafone local", "0201234567", ProviderVodafone, true},
		{"vodafone international", "233501234567", ProviderVodafone, true},
		{"airteltigo plus", "+233271234567", ProviderAirtelTigo, true},
		{"airteltigo no zero", "261234567", ProviderAirtelTigo, true},
		{"formatted", "055 123 4567", ProviderMTN, true},
		{"unknown prefix", "0301234567", "", false},
		{"too short", "02", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectProvider(tt.phone)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectProvider_AllPrefixesAcrossFormats(t *testing.T) {
	for prefix, provider := range providerPrefixes {
		rest := "1234567"
		formats := []string{
			prefix + rest,
			"233" + prefix[1:] + rest,
			"+233" + prefix[1:] + rest,
			prefix[1:] + rest,
		}
		for _, phone := range formats {
			got, ok := DetectProvider(phone)
			assert.True(t, ok, phone)
			assert.Equal(t, provider, got, phone)
		}
	}
}

func TestPhoneFormats_RoundTrip(t *testing.T) {
	locals := []string{"0241234567", "0501234567", "0271234567", "0551112222"}
	for _, local := range locals {
		intl := ToInternational(local)
		assert.Equal(t, "233"+local[1:], intl)
		assert.Equal(t, local, ToLocal(intl))
		assert.Equal(t, local, ToLocal("+"+intl))
		assert.Equal(t, local, ToLocal(local[1:]))
	}
}

func TestToLocal_Empty(t *testing.T) {
	assert.Equal(t, "", ToLocal(""))
	assert.Equal(t, "", ToInternational("abc"))
}

func TestParseCardType(t *testing.T) {
	tests := []struct {
		in     string
		want   CardType
		wantOK bool
	}{
		{"DashGo", CardTypeDashGo, true},
		{"dash_pro", CardTypeDashPro, true},
		{" DASHX ", CardTypeDashX, true},
		{"dash-pass", CardTypeDashPass, true},
		{"giftcard", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCardType(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCardType_Names(t *testing.T) {
	assert.Equal(t, "DashGo", CardTypeDashGo.APIName())
	assert.Equal(t, "DashPass", CardTypeDashPass.APIName())
	assert.Equal(t, "dash-go", CardTypeDashGo.PathSegment())
	assert.Equal(t, "dash-pro", CardTypeDashPro.PathSegment())
	assert.Equal(t, "dash-x", CardTypeDashX.PathSegment())
	assert.Equal(t, "dash-pass", CardTypeDashPass.PathSegment())
}

func TestCardType_Kinds(t *testing.T) {
	assert.True(t, CardTypeDashX.RequiresCardSelection())
	assert.True(t, CardTypeDashPass.RequiresCardSelection())
	assert.False(t, CardTypeDashGo.RequiresCardSelection())
	assert.True(t, CardTypeDashPro.TakesAmount())
	assert.False(t, CardTypeDashPass.TakesAmount())
}

func TestDeriveBranches_FirstWins(t *testing.T) {
	v := Vendor{
		VendorID: 1,
		BranchesWithCards: []BranchWithCards{
			{Branch: Branch{BranchID: 7, BranchName: "Osu"}},
			{Branch: Branch{BranchID: 8, BranchName: "Airport"}},
			{Branch: Branch{BranchID: 7, BranchName: "Osu (dup)"}},
		},
	}
	branches := DeriveBranches(v)
	assert.Len(t, branches, 2)
	assert.Equal(t, "Osu", branches[0].BranchName)
}

func TestFlattenVendorCards(t *testing.T) {
	v := Vendor{
		VendorID: 3,
		Name:     "Melcom",
		BranchesWithCards: []BranchWithCards{
			{
				Branch: Branch{BranchID: 7, BranchName: "Osu", BranchLocation: "Accra"},
				Cards:  []VendorCard{{CardID: 1, CardType: "DashX", CardPrice: 40}},
			},
		},
		VendorCards: []VendorCard{{CardID: 2, CardType: "DASHPASS"}},
	}
	cards := FlattenVendorCards(v)
	assert.Len(t, cards, 2)

	assert.Equal(t, CardTypeDashX, cards[0].CardType)
	assert.True(t, cards[0].InBranch(7))
	assert.Equal(t, "Osu", cards[0].BranchName)
	assert.Equal(t, "Melcom", cards[0].VendorName)
	assert.Equal(t, int64(3), *cards[0].VendorID)

	assert.Equal(t, CardTypeDashPass, cards[1].CardType)
	assert.Nil(t, cards[1].BranchID)
	assert.Equal(t, int64(3), *cards[1].VendorID)
}

func TestRecipientAmounts_FirstCard(t *testing.T) {
	var nilAmounts *RecipientAmounts
	assert.Equal(t, int64(0), nilAmounts.FirstCardID())
	assert.Nil(t, nilAmounts.FirstCard())

	r := &RecipientAmounts{Cards: []VendorCard{{CardID: 99}, {CardID: 100}}}
	assert.Equal(t, int64(99), r.FirstCardID())
	assert.Equal(t, int64(99), r.FirstCard().CardID)
}

func TestRedemptionResult_Succeeded(t *testing.T) {
	tests := []struct {
		name string
		res  *RedemptionResult
		want bool
	}{
		{"status success", &RedemptionResult{Status: "Success"}, true},
		{"status code 200", &RedemptionResult{StatusCode: 200}, true},
		{"status code 201", &RedemptionResult{StatusCode: 201}, true},
		{"failed", &RedemptionResult{Status: "failed", StatusCode: 400}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Succeeded())
		})
	}
}
