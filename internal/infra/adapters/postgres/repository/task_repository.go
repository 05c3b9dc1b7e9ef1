package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mkarwowski/bingoroom/internal/domain/models"
)

type TaskRepository interface {
	// Seed досыпает каталог задач, уже существующие строки не трогает.
	Seed(ctx context.Context, tasks []models.Task) error

	// SampleByCategory возвращает limit случайных задач категории без повторов.
	SampleByCategory(ctx context.Context, category string, limit int) ([]models.Task, error)
}

type taskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Seed(ctx context.Context, tasks []models.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := "INSERT INTO tasks (id, description, category) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING"

	for _, task := range tasks {
		if _, err := tx.ExecContext(ctx, query, task.ID, task.Description, task.Category); err != nil {
			return fmt.Errorf("seed task %d: %w", task.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func (r *taskRepo) SampleByCategory(ctx context.Context, category string, limit int) ([]models.Task, error) {
	var tasks []models.Task

	query := "SELECT id, description, category FROM tasks WHERE category = $1 ORDER BY random() LIMIT $2"

	if err := r.db.SelectContext(ctx, &tasks, query, category, limit); err != nil {
		return nil, fmt.Errorf("sample tasks: %w", err)
	}

	return tasks, nil
}
