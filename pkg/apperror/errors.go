package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 error for a missing or malformed field.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidCardType() *AppError {
	return New("VAL_003", "Card type must be one of DashGo, DashPro, DashX, DashPass", http.StatusBadRequest)
}

func ErrUnrecognizedProvider(prefix string) *AppError {
	return New("VAL_004", fmt.Sprintf("Unrecognized mobile money provider for prefix %q", prefix), http.StatusBadRequest)
}

func ErrPhoneRequired() *AppError {
	return New("VAL_005", "A phone number is required to redeem", http.StatusBadRequest)
}

func ErrBranchRequired() *AppError {
	return New("VAL_006", "Select a branch first", http.StatusBadRequest)
}

func ErrInvalidTransition(step, action string) *AppError {
	return New("VAL_007", fmt.Sprintf("Action %s is not allowed in step %s", action, step), http.StatusConflict)
}

// ---- Vendor resolution (RES) ----

func ErrVendorNotResolved() *AppError {
	return New("RES_001", "Vendor account could not be resolved", http.StatusUnprocessableEntity)
}

func ErrVendorNotFound() *AppError {
	return New("RES_002", "Vendor not found in search results", http.StatusNotFound)
}

func ErrBranchNotFound() *AppError {
	return New("RES_003", "Branch not found for vendor", http.StatusNotFound)
}

func ErrCardNotFound() *AppError {
	return New("RES_004", "Card not available for the selected vendor and branch", http.StatusNotFound)
}

// ---- Balance (BAL) ----

func ErrBalanceFetch(err error) *AppError {
	return Wrap("BAL_001", "Unable to fetch card balance", http.StatusBadGateway, err)
}

// ---- Redemption submission (RED) ----

func ErrNoCardSelected() *AppError {
	return New("RED_001", "Select a card to redeem", http.StatusBadRequest)
}

func ErrNoCardAvailable() *AppError {
	return New("RED_002", "No card available to redeem", http.StatusUnprocessableEntity)
}

func ErrRedemptionRejected(message string) *AppError {
	return New("RED_003", message, http.StatusUnprocessableEntity)
}

func ErrRedemptionFailed(err error) *AppError {
	return Wrap("RED_004", "Redemption failed", http.StatusBadGateway, err)
}

func ErrSubmissionInProgress() *AppError {
	return New("RED_005", "A redemption for this session is already in progress", http.StatusConflict)
}

func ErrInsufficientBalance() *AppError {
	return New("RED_006", "Insufficient balance", http.StatusUnprocessableEntity)
}

func ErrNotImplemented(feature string) *AppError {
	return New("RED_010", fmt.Sprintf("%s is not yet implemented", feature), http.StatusNotImplemented)
}

// ---- Rating (RTG) ----

func ErrRatingRequired() *AppError {
	return New("RTG_001", "Select a rating between 1 and 5", http.StatusBadRequest)
}

func ErrRatingFailed(err error) *AppError {
	return Wrap("RTG_002", "Unable to submit rating", http.StatusBadGateway, err)
}

// ---- Session (SES) ----

func ErrSessionNotFound() *AppError {
	return New("SES_001", "Redemption session not found or expired", http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (LIM) ----

func ErrRateLimitExceeded() *AppError {
	return New("LIM_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Upstream platform (UPS) ----

func ErrUpstream(err error) *AppError {
	return Wrap("UPS_001", "Gift card platform unavailable", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorage(err error) *AppError {
	return Wrap("SYS_002", "Session storage failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
