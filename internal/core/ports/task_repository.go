package ports

import (
	"context"

	"github.com/taskstack/tarefas-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Writes that report
// rows affected let the service distinguish a committed change from a no-op.
type TaskRepository interface {
	// FindByID retrieves a task by identifier, or domain.ErrTaskNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// FindAll returns every task in the store's default enumeration order.
	FindAll(ctx context.Context) ([]domain.Task, error)
	// Insert persists a new task and returns it with the generated identifier.
	Insert(ctx context.Context, t *domain.Task) (*domain.Task, error)
	// Update replaces the task wholesale, keyed by t.ID, and returns the
	// number of rows affected.
	Update(ctx context.Context, t *domain.Task) (int64, error)
	// Delete removes the task and returns the number of rows affected.
	Delete(ctx context.Context, id int64) (int64, error)
}
