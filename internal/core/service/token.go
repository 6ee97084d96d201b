package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskstack/tarefas-api/internal/core/domain"
	"github.com/taskstack/tarefas-api/internal/core/ports"
)

// TokenSettings is the explicit configuration for token issuance.
type TokenSettings struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// IssueToken builds a signed HS256 bearer token for user and returns it with
// the claim and role metadata the client needs. Pure except for reading the
// clock: same user, same settings, same instant give the same token.
func IssueToken(user *domain.User, settings TokenSettings) (*ports.TokenResult, error) {
	ttl := settings.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now().UTC()
	expires := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"perms": user.Permissions,
		"roles": user.Roles,
		"iat":   now.Unix(),
		"exp":   expires.Unix(),
	}
	if settings.Issuer != "" {
		claims["iss"] = settings.Issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(settings.Secret))
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expires,
		Claims: map[string]string{
			"sub":   user.ID,
			"email": user.Email,
		},
		Roles: user.Roles,
	}, nil
}
