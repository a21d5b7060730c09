// Package service defines interfaces for core, stateless domain logic.
package service

// TokenClaims carries the authenticated principal extracted from a verified token.
// Principal is the identifier asserted by the caller (the account email); the core
// resolves it to a user through the authorization usecase, never trusting an id
// embedded in the token itself.
type TokenClaims struct {
	Principal string
	Role      string
}

// TokenService defines the boundary-layer contract for issuing and verifying
// session tokens. The core never depends on the token format; it consumes only
// the resolved principal.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a principal.
	GenerateTokens(principal string, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)
}
