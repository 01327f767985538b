// Package error defines domain-specific errors for the SpendView application.
package error

import "errors"

// Date range domain errors.
var (
	// ErrForwardOffset is returned when a window past "now" is requested.
	ErrForwardOffset = errors.New("offset must be zero or negative")

	// ErrInvalidOffset is returned when the offset is not an integer.
	ErrInvalidOffset = errors.New("offset must be an integer")
)

// RangeErrorCode defines error codes for date range errors.
// Format: RNG-XXYYYY where XX is category and YYYY is specific error.
type RangeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeForwardOffset RangeErrorCode = "RNG-010001"
	ErrCodeInvalidOffset RangeErrorCode = "RNG-010002"

	// Internal errors (99XXXX)
	ErrCodeRangeInternalError RangeErrorCode = "RNG-990001"
)

// RangeError represents a date range error with code and message.
type RangeError struct {
	Code    RangeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RangeError) Unwrap() error {
	return e.Err
}

// NewRangeError creates a new RangeError with the given code and message.
func NewRangeError(code RangeErrorCode, message string, err error) *RangeError {
	return &RangeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
