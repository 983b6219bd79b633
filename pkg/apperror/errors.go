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

// ---- Envelope Authentication (SEC) ----

func ErrDecryptionFailed() *AppError {
	return New("SEC_001", "Decryption failed", http.StatusUnauthorized)
}

func ErrInvalidServer() *AppError {
	return New("SEC_002", "Invalid server", http.StatusUnauthorized)
}

func ErrSignatureVerificationFailed() *AppError {
	return New("SEC_003", "Signature verification failed", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Reward Business Logic (RWD) ----

// Validation returns a field-validation error for inbound payloads.
func Validation(message string) *AppError {
	return New("RWD_001", message, http.StatusBadRequest)
}

func ErrRewardTypeUnavailable() *AppError {
	return New("RWD_002", "Reward type no longer available", http.StatusUnprocessableEntity)
}

func ErrRewardCapReached() *AppError {
	return New("RWD_003", "Reward payout cap reached for recipient", http.StatusUnprocessableEntity)
}

func ErrAlreadyFunded() *AppError {
	return New("RWD_004", "Request already funded", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("RWD_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Sender Pool Resources (POOL) ----

func ErrInsufficientFunds() *AppError {
	return New("POOL_001", "Insufficient funds across sender wallets", http.StatusServiceUnavailable)
}

func ErrNoUsableSender() *AppError {
	return New("POOL_002", "No usable sender wallet", http.StatusServiceUnavailable)
}

func ErrAllocationTimeout() *AppError {
	return New("POOL_003", "Timed out waiting for a sender wallet", http.StatusServiceUnavailable)
}

// ---- Operator Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrSubmissionFailed(err error) *AppError {
	return Wrap("SYS_002", "Transfer submission failed", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
