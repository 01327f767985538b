// Package error defines domain-specific errors for the SpendView application.
package error

import "errors"

// Authentication domain errors. Identity is issued by the host platform;
// this layer only verifies the token it was handed.
var (
	// ErrInvalidToken is returned when a platform token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a platform token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (01XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-010003"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
