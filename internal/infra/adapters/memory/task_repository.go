package memory

import (
	"context"
	"math/rand"

	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type taskRepo struct {
	store *Store
}

func NewTaskRepo(store *Store) repository.TaskRepository {
	return &taskRepo{store: store}
}

func (r *taskRepo) Seed(ctx context.Context, tasks []models.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, task := range tasks {
		if _, ok := r.store.tasks[task.ID]; !ok {
			r.store.tasks[task.ID] = task
		}
	}

	return nil
}

func (r *taskRepo) SampleByCategory(ctx context.Context, category string, limit int) ([]models.Task, error) {
	r.store.mu.RLock()

	matching := make([]models.Task, 0, len(r.store.tasks))
	for _, task := range r.store.tasks {
		if task.Category == category {
			matching = append(matching, task)
		}
	}

	r.store.mu.RUnlock()

	rand.Shuffle(len(matching), func(i, j int) {
		matching[i], matching[j] = matching[j], matching[i]
	})

	if len(matching) > limit {
		matching = matching[:limit]
	}

	return matching, nil
}
