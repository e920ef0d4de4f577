package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidRole       = errors.New("invalid_role")
	ErrForbidden         = errors.New("forbidden")
	ErrPropertyOccupied  = errors.New("property_occupied")
	ErrLeaseNotActive    = errors.New("lease_not_active")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInvalidRate       = errors.New("invalid_exchange_rate")
	ErrPaymentSettled    = errors.New("payment_settled")
	ErrInvalidTransition = errors.New("invalid_status_transition")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	ErrNoRowsUpdated = errors.New("no_rows_updated")
)

// AppError carries structured failure information from services to
// controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError with an optional wrapped cause.
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: message, Err: err}
}

// Forbidden is the standard fail-closed authorization error.
func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, ErrCodeForbidden, message, ErrForbidden)
}

// Validation rejects a request before any write happens.
func Validation(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, ErrCodeValidation, message, err)
}

// NotFound maps a missing row to a typed failure.
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
