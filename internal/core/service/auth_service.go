package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskstack/tarefas-api/internal/core/domain"
	"github.com/taskstack/tarefas-api/internal/core/ports"
)

// AuthService implements registration and password sign-in with lockout
// tracking. Wrong-password and unknown-email failures are indistinguishable
// to the caller.
type AuthService struct {
	users       ports.UserRepository
	lockout     ports.LockoutStore
	tokens      TokenSettings
	maxAttempts int64
	logger      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, lockout ports.LockoutStore, tokens TokenSettings, maxAttempts int, logger zerolog.Logger) *AuthService {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &AuthService{
		users:       users,
		lockout:     lockout,
		tokens:      tokens,
		maxAttempts: int64(maxAttempts),
		logger:      logger,
	}
}

// Register creates a pre-confirmed account and issues a token for it.
// Structural validation (email shape, password length) happens at the
// transport layer; this enforces only what the stores require.
func (s *AuthService) Register(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          email,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
		Roles:          []string{domain.RoleUser},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")

	return IssueToken(created, s.tokens)
}

// Login performs password sign-in. Lockout is checked before the password so
// a locked account cannot be probed, and both unknown email and wrong
// password count as failures toward the lock.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	locked, err := s.lockout.Locked(ctx, email)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, domain.ErrAccountLocked
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.recordFailure(ctx, email)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, s.recordFailure(ctx, email)
	}

	if err := s.lockout.Clear(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to clear lockout counter")
	}

	return IssueToken(user, s.tokens)
}

// recordFailure counts one failed attempt and always returns the generic
// credentials error. Crossing the threshold is logged but not reported to
// the caller; the lock takes effect on the next attempt.
func (s *AuthService) recordFailure(ctx context.Context, email string) error {
	count, err := s.lockout.RecordFailure(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
	}
	if count >= s.maxAttempts {
		s.logger.Warn().Str("email", email).Int64("failures", count).Msg("account locked out")
	}
	return domain.ErrInvalidCredentials
}
