package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskstack/tarefas-api/internal/core/domain"
)

// TaskRepository persists tasks in Postgres. Each statement runs in its own
// implicit transaction; conflict behavior between concurrent writers is
// whatever the database provides (last commit wins).
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
		SELECT id, titulo, concluida, data_vencimento, created_at, updated_at
		FROM tarefas
		WHERE id = $1`

	var t domain.Task
	var due sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Titulo, &t.Concluida, &due, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if due.Valid {
		t.DataVencimento = due.Time
	}
	return &t, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	const query = `
		SELECT id, titulo, concluida, data_vencimento, created_at, updated_at
		FROM tarefas`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		var due sql.NullTime
		if err := rows.Scan(&t.ID, &t.Titulo, &t.Concluida, &due, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if due.Valid {
			t.DataVencimento = due.Time
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Insert(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	const query = `
		INSERT INTO tarefas (titulo, concluida, data_vencimento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	created := *t
	err := r.db.QueryRowContext(ctx, query,
		t.Titulo, t.Concluida, nullableTime(t.DataVencimento), t.CreatedAt, t.UpdatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &created, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) (int64, error) {
	const query = `
		UPDATE tarefas
		SET titulo = $2, concluida = $3, data_vencimento = $4, updated_at = $5
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		t.ID, t.Titulo, t.Concluida, nullableTime(t.DataVencimento), t.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update task: %w", err)
	}
	return res.RowsAffected()
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tarefas WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete task: %w", err)
	}
	return res.RowsAffected()
}

// nullableTime maps the zero time to SQL NULL so an absent due date is not
// stored as year one.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
