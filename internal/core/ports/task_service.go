package ports

import (
	"context"
	"time"

	"github.com/taskstack/tarefas-api/internal/core/domain"
)

// TaskInput carries the mutable fields of a task. The identifier is never
// taken from the payload: creation generates one, replacement is keyed by the
// path identifier.
type TaskInput struct {
	Titulo         string
	Concluida      bool
	DataVencimento time.Time
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, input TaskInput) (*domain.Task, error)
	// Replace overwrites the task addressed by id with input (full replace
	// semantics). Returns domain.ErrTaskNotFound when id does not exist.
	Replace(ctx context.Context, id int64, input TaskInput) error
	Delete(ctx context.Context, id int64) error
}
