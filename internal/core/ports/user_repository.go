package ports

import (
	"context"

	"github.com/taskstack/tarefas-api/internal/core/domain"
)

// UserRepository defines the interface for the identity store.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail retrieves a user by email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
