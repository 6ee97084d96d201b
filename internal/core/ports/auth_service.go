package ports

import (
	"context"
	"time"
)

// TokenResult is the bearer-token response built per authentication request.
// It is transient: constructed, returned to the caller, never persisted.
type TokenResult struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Claims      map[string]string `json:"claims"`
	Roles       []string          `json:"roles"`
}

// AuthService defines registration and password sign-in.
type AuthService interface {
	// Register creates a pre-confirmed account and issues a token for it.
	Register(ctx context.Context, email, password string) (*TokenResult, error)
	// Login performs password sign-in with lockout tracking. Wrong password
	// and unknown email both surface domain.ErrInvalidCredentials so callers
	// cannot enumerate accounts.
	Login(ctx context.Context, email, password string) (*TokenResult, error)
}
