// Package platform is the HTTP adapter for the gift card platform REST API.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dashqard-redemption/config"
	"dashqard-redemption/internal/core/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const (
	pathAccountDetails   = "/payments/mobile-money/account-details"
	pathVendors          = "/vendors/all/details"
	pathRecipientAmounts = "/redemptions/recipient-amounts/"
	pathCardBalance      = "/redemptions/card-balance"
	pathRedeemCards      = "/redemptions/users/cards"
	pathRateCard         = "/cards/rate"
)

// StatusError is a non-2xx platform response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("platform returned status %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed if repeated.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// Client implements ports.PlatformClient over HTTP.
type Client struct {
	baseURL         string
	apiKey          string
	httpClient      *http.Client
	maxRetryElapsed time.Duration
	log             zerolog.Logger
}

// NewClient creates a platform API client.
func NewClient(cfg config.PlatformConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:          cfg.APIKey,
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		maxRetryElapsed: cfg.MaxRetryElapsed,
		log:             log.With().Str("component", "platform").Logger(),
	}
}

// ValidateMobileMoneyAccount looks up the registered name of a mobile money wallet.
func (c *Client) ValidateMobileMoneyAccount(ctx context.Context, phone string, provider domain.MobileMoneyProvider) (string, error) {
	body, status, err := c.do(ctx, http.MethodPost, pathAccountDetails, nil, map[string]string{
		"phone_number": phone,
		"provider":     string(provider),
	})
	if err != nil {
		return "", fmt.Errorf("validate mobile money account: %w", err)
	}
	if status >= http.StatusBadRequest {
		return "", &StatusError{StatusCode: status, Message: errorMessage(body)}
	}
	return ProbeAccountName(body), nil
}

// SearchVendors lists vendors matching query.
func (c *Client) SearchVendors(ctx context.Context, query string, limit int) ([]domain.Vendor, error) {
	params := url.Values{}
	params.Set("search", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	body, err := c.get(ctx, pathVendors, params)
	if err != nil {
		return nil, fmt.Errorf("search vendors: %w", err)
	}
	return ProbeVendors(body), nil
}

// GetRecipientAmounts runs the recipient-amount query for one card type.
func (c *Client) GetRecipientAmounts(ctx context.Context, cardType domain.CardType, p domain.AmountQueryParams) (*domain.RecipientAmounts, error) {
	params := url.Values{}
	params.Set("phone_number", p.PhoneNumber)
	if p.BranchID != nil {
		params.Set("branch_id", strconv.FormatInt(*p.BranchID, 10))
	}
	if p.VendorID != nil {
		params.Set("vendor_id", strconv.FormatInt(*p.VendorID, 10))
	}
	body, err := c.get(ctx, pathRecipientAmounts+cardType.PathSegment(), params)
	if err != nil {
		return nil, fmt.Errorf("get %s recipient amounts: %w", cardType, err)
	}
	return ProbeRecipientAmounts(cardType, body), nil
}

// GetCardBalance is the direct balance lookup used for DashX and DashPass cards.
func (c *Client) GetCardBalance(ctx context.Context, cardType domain.CardType, phone string) (*float64, error) {
	params := url.Values{}
	params.Set("phone_number", phone)
	params.Set("card_type", cardType.APIName())
	body, err := c.get(ctx, pathCardBalance, params)
	if err != nil {
		return nil, fmt.Errorf("get %s card balance: %w", cardType, err)
	}
	return ProbeBalance(body), nil
}

// RedeemCards submits a redemption. Platform rejections come back as a result
// with a non-success status; only transport failures and 5xx are errors.
func (c *Client) RedeemCards(ctx context.Context, payload domain.RedemptionPayload) (*domain.RedemptionResult, error) {
	body, status, err := c.do(ctx, http.MethodPost, pathRedeemCards, nil, payload)
	if err != nil {
		return nil, fmt.Errorf("redeem cards: %w", err)
	}
	if status >= http.StatusInternalServerError {
		return nil, &StatusError{StatusCode: status, Message: errorMessage(body)}
	}
	res := ProbeRedemptionResult(body, status)
	if res.Message == "" && status >= http.StatusBadRequest {
		res.Message = errorMessage(body)
	}
	return res, nil
}

// RateCard records the user's 1-5 star rating of a redeemed card.
func (c *Client) RateCard(ctx context.Context, cardID int64, rating int) error {
	body, status, err := c.do(ctx, http.MethodPost, pathRateCard, nil, map[string]any{
		"card_id": cardID,
		"rating":  rating,
	})
	if err != nil {
		return fmt.Errorf("rate card: %w", err)
	}
	if status >= http.StatusBadRequest {
		return &StatusError{StatusCode: status, Message: errorMessage(body)}
	}
	return nil
}

// get performs an idempotent GET, retrying transport errors and retryable
// statuses with exponential backoff until maxRetryElapsed.
func (c *Client) get(ctx context.Context, path string, params url.Values) (any, error) {
	var body any
	op := func() error {
		b, status, err := c.do(ctx, http.MethodGet, path, params, nil)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if status >= http.StatusBadRequest {
			statusErr := &StatusError{StatusCode: status, Message: errorMessage(b)}
			if statusErr.Retryable() {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}
		body = b
		return nil
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.maxRetryElapsed > 0 {
		policy = backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(c.maxRetryElapsed))
	}
	policy = backoff.WithContext(policy, ctx)
	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Str("path", path).Dur("retry_in", wait).Msg("platform request failed, retrying")
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return body, nil
}

// do sends one request and decodes the JSON response body, if any.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload any) (any, int, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("platform request")

	body, err := decodeBody(resp.Body)
	if err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			// Error pages are not always JSON; the status alone is enough.
			return nil, resp.StatusCode, nil
		}
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func decodeBody(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return body, nil
}
