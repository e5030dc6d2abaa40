package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims carries the verified content of an access token.
type Claims struct {
	UserID uuid.UUID // Subject of the token.
	Email  string    // The user's email, used by email-scoped endpoints.
	Role   string    // The user's role at issuance time.
	Type   string    // "access" or "refresh".
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, email, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hash under which a refresh token is persisted.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured lifetime for refresh tokens.
	RefreshTokenDuration() time.Duration
}
