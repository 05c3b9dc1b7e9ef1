package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsernames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type userRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := "INSERT INTO users (id, email, username, password_hash) VALUES ($1, $2, $3, $4)"

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Username, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}

		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User

	query := "SELECT id, email, username, password_hash, games_played, games_won, created_at, updated_at FROM users WHERE id = $1"

	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := "SELECT id, email, username, password_hash, games_played, games_won, created_at, updated_at FROM users WHERE email = $1"

	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) GetUsernames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	query, args, err := sqlx.In("SELECT id, username FROM users WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build usernames query: %w", err)
	}

	rows := []struct {
		ID       uuid.UUID `db:"id"`
		Username string    `db:"username"`
	}{}

	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select usernames: %w", err)
	}

	result := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		result[row.ID] = row.Username
	}

	return result, nil
}
