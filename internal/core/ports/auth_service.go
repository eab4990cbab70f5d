package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// TokenPair is the signed access/refresh token pair issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// LoginResult is the full login response: token pair plus the
// authenticated account's profile snapshot.
type LoginResult struct {
	TokenPair
	User domain.Profile
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Login validates identifier+secret and issues a token pair. The
	// identifier is matched case-insensitively against account emails.
	Login(ctx context.Context, identifier, secret string) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
