package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the action conflicts with the resource's current state.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInvalidSettlement indicates a settlement that must not be committed:
// negative net amount, non-positive base salary, missing payment date, or an
// override rate outside [0,100]. Computing such a settlement is fine;
// committing it is not.
var ErrInvalidSettlement = errors.New("invalid settlement")

// ErrConcurrentModification indicates the unpaid-loan set changed between
// the settlement read and the commit write. Callers should re-read and retry
// rather than proceed.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// AppError wraps a lower-level failure with an HTTP-ish status code and a
// human message, preserving the cause for errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
