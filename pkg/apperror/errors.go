package apperror

import (
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

// ---- Configuration (CFG) ----

func ErrConfigurationMissing(purpose string) *AppError {
	return New("CFG_001", fmt.Sprintf("Gateway credentials for %s are missing or incomplete", purpose), http.StatusInternalServerError)
}

// ErrConfigurationInvalid carries the underlying validation failure for the
// operator log while keeping the client-facing message generic.
func ErrConfigurationInvalid(purpose string, err error) *AppError {
	return Wrap("CFG_001", fmt.Sprintf("Gateway credentials for %s are missing or incomplete", purpose), http.StatusInternalServerError, err)
}

// ---- Envelope Security (SEC) ----

func ErrSignatureMismatch() *AppError {
	return New("SEC_001", "Envelope signature mismatch", http.StatusBadRequest)
}

func ErrDecryptionFailure(err error) *AppError {
	return Wrap("SEC_002", "Envelope decryption failed", http.StatusBadRequest, err)
}

func ErrRelayTicketInvalid() *AppError {
	return New("SEC_003", "Store selection ticket is invalid or expired", http.StatusBadRequest)
}

// ---- Orders (ORD) ----

func ErrOrderNotFound() *AppError {
	return New("ORD_001", "Order not found", http.StatusNotFound)
}

func ErrInvalidOrderNo() *AppError {
	return New("ORD_002", "Order number is invalid", http.StatusBadRequest)
}

func ErrEmptyCart() *AppError {
	return New("ORD_003", "Cart contains no items", http.StatusBadRequest)
}

func ErrOrderAlreadyPaid() *AppError {
	return New("ORD_005", "Order is already paid", http.StatusConflict)
}

func ErrRefundNotApplicable() *AppError {
	return New("ORD_006", "Order is not in a refundable state", http.StatusConflict)
}

// ErrLookupMismatch is returned for both unknown orders and contact
// mismatches so the endpoint does not leak order existence.
func ErrLookupMismatch() *AppError {
	return New("ORD_004", "No matching order, please check your input", http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
