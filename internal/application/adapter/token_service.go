// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TokenClaims carries the identity the host platform encoded in a token.
// Both ids are opaque to this service; they are passed through to the
// engine unvalidated (the platform owns identity semantics).
type TokenClaims struct {
	UserID  string
	GroupID string
}

// TokenService validates platform-issued access tokens.
type TokenService interface {
	// ValidateAccessToken verifies the token signature and expiry and
	// returns the embedded claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
