// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"passport/config"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Minute * 15,   // e.g., 15 minutes
		refreshTTL:    time.Hour * 24 * 7, // e.g., 7 days
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given principal and role.
func (s *jwtService) GenerateTokens(principal, role string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(principal, role, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(principal, role, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token string and extracts its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.TokenClaims, error) {
	return s.validateToken(tokenString, s.accessSecret, "access")
}

// ValidateRefreshToken checks a refresh token string and extracts its claims.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.TokenClaims, error) {
	return s.validateToken(tokenString, s.refreshSecret, "refresh")
}

// validateToken parses a token string against a secret and verifies the token type.
func (s *jwtService) validateToken(tokenString, secret, expectedType string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != expectedType {
		return nil, errors.Errorf("unexpected token type: %s", tokenType)
	}

	principal, _ := claims["sub"].(string)
	if principal == "" {
		return nil, errors.New("token missing subject")
	}
	role, _ := claims["role"].(string)

	return &service.TokenClaims{
		Principal: principal,
		Role:      role,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(principal, role string, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  principal,                  // Subject (who the token is for)
		"role": role,                       // Role for stateless authorization
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(ttl).Unix(), // Expiration Time
		"type": tokenType,                  // Type of token (access or refresh)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
