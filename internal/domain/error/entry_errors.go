// Package error defines domain-specific errors for the SpendView application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrInvalidViewType is returned when the view type is not week or month.
	ErrInvalidViewType = errors.New("view must be: week or month")

	// ErrInvalidTypeFilter is returned when the type filter is not a known kind.
	ErrInvalidTypeFilter = errors.New("type must be: income or expense")

	// ErrInvalidAmountBand is returned when the amount band name is unknown.
	ErrInvalidAmountBand = errors.New("amount_band must be: under_10, 10_to_50, 50_to_100, or over_100")

	// ErrInvalidNamedRange is returned when the named date range is unknown.
	ErrInvalidNamedRange = errors.New("date_range must be: today, yesterday, this_week, or this_month")

	// ErrInvalidSyncPayload is returned when the sync payload cannot be decoded.
	ErrInvalidSyncPayload = errors.New("invalid sync payload")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidViewType     EntryErrorCode = "ENT-010001"
	ErrCodeInvalidTypeFilter   EntryErrorCode = "ENT-010002"
	ErrCodeInvalidAmountBand   EntryErrorCode = "ENT-010003"
	ErrCodeInvalidNamedRange   EntryErrorCode = "ENT-010004"
	ErrCodeInvalidSyncPayload  EntryErrorCode = "ENT-010005"
	ErrCodeInvalidPersonalView EntryErrorCode = "ENT-010006"

	// Internal errors (99XXXX)
	ErrCodeEntryInternalError EntryErrorCode = "ENT-990001"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
