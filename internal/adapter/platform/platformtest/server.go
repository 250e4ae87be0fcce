// Package platformtest provides an in-memory twin of the gift card platform API
// for tests.
package platformtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Server is a fake platform API. Response bodies are stored raw so tests can
// exercise every shape variant the real endpoints produce.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	accounts     map[string]string // international phone -> account name
	vendors      any
	amounts      map[string]any // dash-go, dash-pro, ... -> body
	cardBalances map[string]any // card_type -> body
	redeemStatus int
	redeemBody   any
	failures     map[string]int // path -> remaining 503 responses
	calls        map[string]int
	lastQuery    map[string]string
	redemptions  []map[string]any
	ratings      []map[string]any
	accountGate  chan struct{}
}

// New starts a platform twin. Close it when done.
func New() *Server {
	s := &Server{
		accounts:     map[string]string{},
		amounts:      map[string]any{},
		cardBalances: map[string]any{},
		failures:     map[string]int{},
		calls:        map[string]int{},
		lastQuery:    map[string]string{},
		redeemStatus: http.StatusOK,
		redeemBody:   map[string]any{"status": "success", "statusCode": 200, "message": "Card redeemed"},
	}

	r := chi.NewRouter()
	r.Use(s.count)
	r.Post("/payments/mobile-money/account-details", s.accountDetails)
	r.Get("/vendors/all/details", s.listVendors)
	r.Get("/redemptions/recipient-amounts/{cardType}", s.recipientAmounts)
	r.Get("/redemptions/card-balance", s.cardBalance)
	r.Post("/redemptions/users/cards", s.redeem)
	r.Post("/cards/rate", s.rate)

	s.Server = httptest.NewServer(r)
	return s
}

// SetAccount registers a mobile money wallet name for an international number.
func (s *Server) SetAccount(phone, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[phone] = name
}

// HoldAccountLookups blocks account-details requests until the returned
// function is called.
func (s *Server) HoldAccountLookups() (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gate := make(chan struct{})
	s.accountGate = gate
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// SetVendors sets the raw vendor list response body.
func (s *Server) SetVendors(body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors = body
}

// SetAmounts sets the raw response for a recipient-amount endpoint (dash-go, dash-pro, dash-x, dash-pass).
func (s *Server) SetAmounts(segment string, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amounts[segment] = body
}

// SetCardBalance sets the raw direct balance response for a card type (DashX, DashPass).
func (s *Server) SetCardBalance(cardType string, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cardBalances[strings.ToLower(cardType)] = body
}

// SetRedeemResponse sets the status and body returned for redemptions.
func (s *Server) SetRedeemResponse(status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redeemStatus = status
	s.redeemBody = body
}

// FailNext makes the next n requests to path answer 503.
func (s *Server) FailNext(path string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = n
}

// Calls returns how many requests reached path.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// LastQuery returns the raw query string of the last request to path.
func (s *Server) LastQuery(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery[path]
}

// Redemptions returns the redemption request bodies received.
func (s *Server) Redemptions() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.redemptions...)
}

// Ratings returns the rating request bodies received.
func (s *Server) Ratings() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.ratings...)
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.URL.Path]++
		s.lastQuery[r.URL.Path] = r.URL.RawQuery
		fail := s.failures[r.URL.Path] > 0
		if fail {
			s.failures[r.URL.Path]--
		}
		s.mu.Unlock()

		if fail {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "temporarily unavailable"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accountDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
		Provider    string `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}

	s.mu.Lock()
	gate := s.accountGate
	name, ok := s.accounts[req.PhoneNumber]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"status": "error", "message": "Account not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": map[string]any{"account_name": name}})
}

func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	body := s.vendors
	s.mu.Unlock()
	if body == nil {
		body = map[string]any{"data": []any{}}
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) recipientAmounts(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "cardType")
	s.mu.Lock()
	body, ok := s.amounts[segment]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "no amounts for " + segment})
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) cardBalance(w http.ResponseWriter, r *http.Request) {
	cardType := strings.ToLower(r.URL.Query().Get("card_type"))
	s.mu.Lock()
	body, ok := s.cardBalances[cardType]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "no balance for " + cardType})
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) redeem(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}
	s.mu.Lock()
	s.redemptions = append(s.redemptions, req)
	status, body := s.redeemStatus, s.redeemBody
	s.mu.Unlock()
	writeJSON(w, status, body)
}

func (s *Server) rate(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}
	s.mu.Lock()
	s.ratings = append(s.ratings, req)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
