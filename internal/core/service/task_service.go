package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskstack/tarefas-api/internal/core/domain"
	"github.com/taskstack/tarefas-api/internal/core/ports"
)

// TaskService implements the task use cases on top of the persistence
// gateway. Every operation is one implicit store transaction; concurrent
// writers are not coordinated beyond last-commit-wins.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// List returns every task in the store's default enumeration order.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Get retrieves one task by identifier.
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new task; the identifier is generated by the store.
func (s *TaskService) Create(ctx context.Context, input ports.TaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		Titulo:         input.Titulo,
		Concluida:      input.Concluida,
		DataVencimento: input.DataVencimento,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("task_id", created.ID).Msg("task created")
	return created, nil
}

// Replace overwrites the task addressed by id with input, keyed strictly by
// the given identifier. The existence check runs first so a missing id is
// reported as not-found no matter what the payload contains.
func (s *TaskService) Replace(ctx context.Context, id int64, input ports.TaskInput) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	task := &domain.Task{
		ID:             existing.ID,
		Titulo:         input.Titulo,
		Concluida:      input.Concluida,
		DataVencimento: input.DataVencimento,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now().UTC(),
	}

	rows, err := s.repo.Update(ctx, task)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNothingPersisted
	}
	return nil
}

// Delete removes the task addressed by id.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNothingPersisted
	}

	s.logger.Info().Int64("task_id", id).Msg("task deleted")
	return nil
}
