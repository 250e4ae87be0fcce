package domain

import (
	"errors"
	"fmt"
	"strings"

	"dashqard-redemption/pkg/apperror"
)

// ErrStaleResult is returned when an asynchronous result no longer matches the
// session's current request token or input. Callers drop the result.
var ErrStaleResult = errors.New("stale result")

// Action is a single user input or lookup result applied to a Session.
type Action interface {
	apply(s *Session) error
}

// Reduce returns the session that results from applying a to s. On error the
// original session is unchanged.
func Reduce(s Session, a Action) (Session, error) {
	next := s.clone()
	if err := a.apply(&next); err != nil {
		return s, err
	}
	return next, nil
}

func (s Session) clone() Session {
	if s.AmountQueries != nil {
		queries := make(map[CardType]*RecipientAmounts, len(s.AmountQueries))
		for k, v := range s.AmountQueries {
			queries[k] = v
		}
		s.AmountQueries = queries
	}
	return s
}

func actionName(a Action) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", a), "domain.")
}

func requireStep(s *Session, a Action, steps ...Step) error {
	for _, st := range steps {
		if s.Step == st {
			return nil
		}
	}
	return apperror.ErrInvalidTransition(string(s.Step), actionName(a))
}

func requireMethod(s *Session, a Action, m RedemptionMethod) error {
	if err := requireStep(s, a, StepDetails); err != nil {
		return err
	}
	if s.Method != m {
		return apperror.ErrInvalidTransition(string(s.Step), actionName(a))
	}
	return nil
}

// invalidateBalance forgets the balance and orphans any lookup in flight.
func (s *Session) invalidateBalance() {
	s.Balance = BalanceState{}
	s.BalanceToken++
}

// resetDetails clears everything downstream of the method choice.
func (s *Session) resetDetails() {
	s.VendorPhone = ""
	s.VendorValidation = VendorValidation{Token: s.VendorValidation.Token + 1}
	s.VendorSearch = ""
	s.VendorSearchToken++
	s.VendorResults = nil
	s.Vendor = nil
	s.Branches = nil
	s.VendorCards = nil
	s.SelectedBranchID = nil
	s.CardType = ""
	s.SelectedCard = nil
	s.Amount = ""
	s.AmountQueries = nil
	s.LastError = ""
	s.invalidateBalance()
}

// NeedsVendorValidation reports whether the vendor wallet number should be looked up:
// long enough, from a known network, and neither validated nor already in flight.
func (s *Session) NeedsVendorValidation() bool {
	if s.Method != MethodVendorMobileMoney || len(s.VendorPhone) < MinVendorPhoneDigits {
		return false
	}
	if _, ok := DetectProvider(s.VendorPhone); !ok {
		return false
	}
	v := s.VendorValidation
	return s.VendorPhone != v.ValidatedPhone && s.VendorPhone != v.InFlightPhone
}

// ValidateRating accepts ratings from 1 to 5 stars.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperror.ErrRatingRequired()
	}
	return nil
}

// ---- Method selection ----

type SelectMethod struct{ Method RedemptionMethod }

func (a SelectMethod) apply(s *Session) error {
	if err := requireStep(s, a, StepMethod, StepDetails); err != nil {
		return err
	}
	if !a.Method.IsValid() {
		return apperror.Validation("Unknown redemption method")
	}
	s.resetDetails()
	s.Method = a.Method
	s.Step = StepDetails
	return nil
}

type BackToMethod struct{}

func (a BackToMethod) apply(s *Session) error {
	if err := requireStep(s, a, StepDetails); err != nil {
		return err
	}
	s.resetDetails()
	s.Method = ""
	s.Step = StepMethod
	return nil
}

// ---- Vendor mobile money ----

type EnterVendorPhone struct{ Phone string }

func (a EnterVendorPhone) apply(s *Session) error {
	if err := requireMethod(s, a, MethodVendorMobileMoney); err != nil {
		return err
	}
	digits := DigitsOnly(a.Phone)
	s.VendorPhone = digits
	v := &s.VendorValidation

	if len(digits) < MinVendorPhoneDigits {
		*v = VendorValidation{Token: v.Token + 1}
		return nil
	}
	// A result for an abandoned number is dropped as stale, so the guard
	// must not keep blocking that number if it is typed again.
	if digits != v.InFlightPhone {
		v.InFlightPhone = ""
	}
	if digits != v.ValidatedPhone {
		v.ValidatedPhone = ""
		v.Name = ""
		v.Provider = ""
		v.Error = ""
	}
	if _, ok := DetectProvider(digits); !ok {
		v.Error = apperror.ErrUnrecognizedProvider(LocalPrefix(digits)).Message
	}
	return nil
}

type VendorValidationStarted struct{ Phone string }

func (a VendorValidationStarted) apply(s *Session) error {
	if a.Phone != s.VendorPhone || !s.NeedsVendorValidation() {
		return ErrStaleResult
	}
	s.VendorValidation.Token++
	s.VendorValidation.InFlightPhone = a.Phone
	s.VendorValidation.Error = ""
	return nil
}

type VendorValidated struct {
	Token    uint64
	Phone    string
	Provider MobileMoneyProvider
	Name     string
}

func (a VendorValidated) apply(s *Session) error {
	if a.Token != s.VendorValidation.Token || a.Phone != s.VendorPhone {
		return ErrStaleResult
	}
	s.VendorValidation = VendorValidation{
		Token:          a.Token,
		ValidatedPhone: a.Phone,
		Provider:       a.Provider,
		Name:           a.Name,
	}
	return nil
}

type VendorValidationFailed struct {
	Token  uint64
	Phone  string
	Reason string
}

func (a VendorValidationFailed) apply(s *Session) error {
	if a.Token != s.VendorValidation.Token || a.Phone != s.VendorPhone {
		return ErrStaleResult
	}
	// Clearing the guard lets the same number be retried.
	s.VendorValidation = VendorValidation{Token: a.Token, Error: a.Reason}
	return nil
}

// ---- Vendor search ----

type EnterVendorSearch struct{ Query string }

func (a EnterVendorSearch) apply(s *Session) error {
	if err := requireMethod(s, a, MethodVendorID); err != nil {
		return err
	}
	s.VendorSearch = strings.TrimSpace(a.Query)
	if s.VendorSearch == "" {
		s.VendorResults = nil
		s.VendorSearchToken++
	}
	return nil
}

type VendorSearchStarted struct{ Query string }

func (a VendorSearchStarted) apply(s *Session) error {
	if s.Method != MethodVendorID || a.Query == "" || a.Query != s.VendorSearch {
		return ErrStaleResult
	}
	s.VendorSearchToken++
	return nil
}

type VendorsLoaded struct {
	Token   uint64
	Vendors []Vendor
}

func (a VendorsLoaded) apply(s *Session) error {
	if a.Token != s.VendorSearchToken {
		return ErrStaleResult
	}
	s.VendorResults = a.Vendors
	return nil
}

type SelectVendor struct{ VendorID int64 }

func (a SelectVendor) apply(s *Session) error {
	if err := requireMethod(s, a, MethodVendorID); err != nil {
		return err
	}
	var found *Vendor
	for i := range s.VendorResults {
		if s.VendorResults[i].VendorID == a.VendorID {
			v := s.VendorResults[i]
			found = &v
			break
		}
	}
	if found == nil && s.Vendor != nil && s.Vendor.VendorID == a.VendorID {
		found = s.Vendor
	}
	if found == nil {
		return apperror.ErrVendorNotFound()
	}

	s.Vendor = found
	s.Branches = DeriveBranches(*found)
	s.VendorCards = FlattenVendorCards(*found)
	s.SelectedBranchID = nil
	s.CardType = ""
	s.SelectedCard = nil
	s.Amount = ""
	s.AmountQueries = nil
	s.invalidateBalance()
	return nil
}

// ---- Card and branch selection ----

type SelectBranch struct{ BranchID int64 }

func (a SelectBranch) apply(s *Session) error {
	if err := requireMethod(s, a, MethodVendorID); err != nil {
		return err
	}
	if s.Vendor == nil {
		return apperror.ErrInvalidTransition(string(s.Step), actionName(a))
	}
	for _, b := range s.Branches {
		if b.BranchID == a.BranchID {
			id := a.BranchID
			s.SelectedBranchID = &id
			s.SelectedCard = nil
			s.AmountQueries = nil
			s.invalidateBalance()
			return nil
		}
	}
	return apperror.ErrBranchNotFound()
}

type SelectCardType struct{ CardType CardType }

func (a SelectCardType) apply(s *Session) error {
	if err := requireMethod(s, a, MethodVendorID); err != nil {
		return err
	}
	if s.Vendor == nil {
		return apperror.ErrInvalidTransition(string(s.Step), actionName(a))
	}
	if !a.CardType.IsValid() {
		return apperror.ErrInvalidCardType()
	}
	if len(s.Branches) > 0 && s.SelectedBranchID == nil {
		return apperror.ErrBranchRequired()
	}
	s.CardType = a.CardType
	s.SelectedCard = nil
	s.invalidateBalance()
	return nil
}

type SelectCard struct{ CardID int64 }

func (a SelectCard) apply(s *Session) error {
	if err := requireMethod(s, a, MethodVendorID); err != nil {
		return err
	}
	if !s.CardType.RequiresCardSelection() {
		return apperror.ErrInvalidTransition(string(s.Step), actionName(a))
	}
	for _, c := range s.CardsForSelection() {
		if c.CardID == a.CardID {
			card := c
			s.SelectedCard = &card
			s.invalidateBalance()
			return nil
		}
	}
	return apperror.ErrCardNotFound()
}

type EnterAmount struct{ Amount string }

func (a EnterAmount) apply(s *Session) error {
	if err := requireStep(s, a, StepDetails); err != nil {
		return err
	}
	s.Amount = strings.TrimSpace(a.Amount)
	return nil
}

type EnterGuestPhone struct{ Phone string }

func (a EnterGuestPhone) apply(s *Session) error {
	if err := requireStep(s, a, StepMethod, StepDetails); err != nil {
		return err
	}
	digits := DigitsOnly(a.Phone)
	if digits == s.GuestPhone {
		return nil
	}
	s.GuestPhone = digits
	s.AmountQueries = nil
	s.invalidateBalance()
	return nil
}

// ---- Balance ----

type BalanceRequested struct{}

func (a BalanceRequested) apply(s *Session) error {
	s.BalanceToken++
	s.Balance = BalanceState{Loading: true}
	return nil
}

type BalanceResolved struct {
	Token   uint64
	Plan    BalancePlan
	Balance *float64
	Amounts *RecipientAmounts
	Err     string
}

func (a BalanceResolved) apply(s *Session) error {
	if a.Token != s.BalanceToken {
		return ErrStaleResult
	}
	s.Balance = BalanceState{Error: a.Err}
	if a.Plan.Kind == BalanceSourceNone {
		return nil
	}
	s.Balance.Balance = a.Balance
	if a.Plan.MirrorDashGo {
		s.Balance.DashGoBalance = a.Balance
	}
	if a.Amounts != nil {
		if s.AmountQueries == nil {
			s.AmountQueries = make(map[CardType]*RecipientAmounts)
		}
		s.AmountQueries[a.Plan.CardType] = a.Amounts
	}
	return nil
}

// ---- Submission and rating ----

type RedemptionFailed struct{ Message string }

func (a RedemptionFailed) apply(s *Session) error {
	if err := requireStep(s, a, StepDetails); err != nil {
		return err
	}
	s.LastError = a.Message
	return nil
}

type RedemptionSucceeded struct{ CardID int64 }

func (a RedemptionSucceeded) apply(s *Session) error {
	if err := requireStep(s, a, StepDetails); err != nil {
		return err
	}
	if a.CardID > 0 {
		id := a.CardID
		s.RedeemedCardID = &id
	}
	s.LastError = ""
	s.Step = StepSuccess
	return nil
}

type StartRating struct{}

func (a StartRating) apply(s *Session) error {
	if err := requireStep(s, a, StepSuccess); err != nil {
		return err
	}
	if s.RedeemedCardID == nil {
		return apperror.Validation("There is no redeemed card to rate")
	}
	s.Step = StepRating
	return nil
}

type RatingSubmitted struct{ Rating int }

func (a RatingSubmitted) apply(s *Session) error {
	if err := requireStep(s, a, StepRating); err != nil {
		return err
	}
	if err := ValidateRating(a.Rating); err != nil {
		return err
	}
	s.Rating = a.Rating
	s.Step = StepSuccess
	return nil
}

type SkipRating struct{}

func (a SkipRating) apply(s *Session) error {
	if err := requireStep(s, a, StepRating); err != nil {
		return err
	}
	s.Step = StepSuccess
	return nil
}

type Reset struct{}

func (a Reset) apply(s *Session) error {
	fresh := NewSession(s.ID, s.UserPhone, s.CreatedAt)
	fresh.VendorValidation.Token = s.VendorValidation.Token + 1
	fresh.VendorSearchToken = s.VendorSearchToken + 1
	fresh.BalanceToken = s.BalanceToken + 1
	*s = fresh
	return nil
}
