// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Stats domain errors.
var (
	// ErrInvalidDateRange is returned when end date is before start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidLookback is returned when the monthly series lookback window is unsupported.
	ErrInvalidLookback = errors.New("lookback must be 3, 6, 12 or 24 months")
)

// StatsErrorCode defines error codes for stats errors.
// Format: STT-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange  StatsErrorCode = "STT-010001"
	ErrCodeInvalidDateFormat StatsErrorCode = "STT-010002"
	ErrCodeInvalidLookback   StatsErrorCode = "STT-010003"

	// Internal errors (99XXXX)
	ErrCodeStatsInternalError StatsErrorCode = "STT-990001"
)

// StatsError represents a stats error with code and message.
type StatsError struct {
	Code    StatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
