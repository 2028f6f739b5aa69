// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotAdmin is returned when a non-admin user invokes an admin-only operation.
	ErrNotAdmin = errors.New("administrator privileges required")

	// ErrCannotDeactivateSelf is returned when an admin attempts to deactivate their own account.
	ErrCannotDeactivateSelf = errors.New("cannot deactivate own account")

	// ErrInvalidCurrency is returned when the currency code is not supported.
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound         UserErrorCode = "USR-010001"
	ErrCodeInvalidCurrency      UserErrorCode = "USR-010002"
	ErrCodeCannotDeactivateSelf UserErrorCode = "USR-010003"

	// Authorization errors (02XXXX)
	ErrCodeNotAdmin UserErrorCode = "USR-020001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
