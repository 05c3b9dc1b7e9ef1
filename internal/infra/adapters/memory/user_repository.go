package memory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type userRepo struct {
	store *Store
}

func NewUserRepo(store *Store) repository.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}

	stored := *user
	r.store.users[user.ID] = &stored

	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	copied := *user
	return &copied, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (r *userRepo) GetUsernames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if user, ok := r.store.users[id]; ok {
			result[id] = user.Username
		}
	}

	return result, nil
}
