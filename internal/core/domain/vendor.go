package domain

import "strings"

// Vendor is a merchant able to redeem gift cards, optionally split into branches.
type Vendor struct {
	VendorID          int64             `json:"vendor_id"`
	Name              string            `json:"business_name"`
	GVID              string            `json:"gvid,omitempty"` // public identifier, display only
	Country           string            `json:"country,omitempty"`
	BranchesWithCards []BranchWithCards `json:"branches_with_cards,omitempty"`
	VendorCards       []VendorCard      `json:"vendor_cards,omitempty"`
}

// Branch is a location under a vendor.
type Branch struct {
	BranchID       int64  `json:"branch_id"`
	BranchName     string `json:"branch_name"`
	BranchLocation string `json:"branch_location,omitempty"`
}

// BranchWithCards is a branch as nested in a vendor payload.
type BranchWithCards struct {
	Branch
	Cards []VendorCard `json:"cards,omitempty"`
}

// VendorCard is the normalized card record used for selection and submission.
// CardType is always lower-case.
type VendorCard struct {
	CardID         int64    `json:"card_id"`
	CardName       string   `json:"card_name"`
	CardType       CardType `json:"card_type"`
	CardPrice      float64  `json:"card_price"`
	Currency       string   `json:"currency,omitempty"`
	Status         string   `json:"status,omitempty"`
	BranchID       *int64   `json:"branch_id,omitempty"`
	BranchName     string   `json:"branch_name,omitempty"`
	BranchLocation string   `json:"branch_location,omitempty"`
	VendorID       *int64   `json:"vendor_id,omitempty"`
	VendorName     string   `json:"vendor_name,omitempty"`
	RecipientID    *int64   `json:"recipient_id,omitempty"`
}

// InBranch reports whether the card carries the given branch context.
func (c VendorCard) InBranch(branchID int64) bool {
	return c.BranchID != nil && *c.BranchID == branchID
}

// DeriveBranches returns the vendor's branches, first occurrence wins per branch_id.
func DeriveBranches(v Vendor) []Branch {
	seen := make(map[int64]struct{}, len(v.BranchesWithCards))
	branches := make([]Branch, 0, len(v.BranchesWithCards))
	for _, b := range v.BranchesWithCards {
		if _, dup := seen[b.BranchID]; dup {
			continue
		}
		seen[b.BranchID] = struct{}{}
		branches = append(branches, b.Branch)
	}
	return branches
}

// FlattenVendorCards collects cards nested under branches (with branch context)
// followed by the vendor's flat card list (without branch context).
func FlattenVendorCards(v Vendor) []VendorCard {
	var cards []VendorCard
	vendorID := v.VendorID
	for _, b := range v.BranchesWithCards {
		for _, c := range b.Cards {
			branchID := b.BranchID
			c.BranchID = &branchID
			c.BranchName = b.BranchName
			c.BranchLocation = b.BranchLocation
			c.VendorID = &vendorID
			c.VendorName = v.Name
			c.CardType = CardType(strings.ToLower(string(c.CardType)))
			cards = append(cards, c)
		}
	}
	for _, c := range v.VendorCards {
		if c.VendorID == nil {
			c.VendorID = &vendorID
		}
		if c.VendorName == "" {
			c.VendorName = v.Name
		}
		c.CardType = CardType(strings.ToLower(string(c.CardType)))
		cards = append(cards, c)
	}
	return cards
}

// RecipientAmounts is the normalized result of one recipient-amount query.
type RecipientAmounts struct {
	CardType CardType     `json:"card_type"`
	Balance  *float64     `json:"balance"`
	Cards    []VendorCard `json:"cards,omitempty"`
}

// FirstCardID returns the first card's id, or 0 when the query returned no cards.
func (r *RecipientAmounts) FirstCardID() int64 {
	if r == nil || len(r.Cards) == 0 {
		return 0
	}
	return r.Cards[0].CardID
}

// FirstCard returns the first card, or nil.
func (r *RecipientAmounts) FirstCard() *VendorCard {
	if r == nil || len(r.Cards) == 0 {
		return nil
	}
	c := r.Cards[0]
	return &c
}
