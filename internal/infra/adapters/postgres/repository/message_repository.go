package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]output.MessageView, error)
}

type messageRepo struct {
	db *sqlx.DB
}

func NewMessageRepo(db *sqlx.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	query := "INSERT INTO messages (id, room_id, user_id, content, created_at) VALUES ($1, $2, $3, $4, $5)"

	_, err := r.db.ExecContext(ctx, query, message.ID, message.RoomID, message.UserID, message.Content, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *messageRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]output.MessageView, error) {
	messages := []output.MessageView{}

	query := `
		SELECT m.id, m.user_id, u.username, m.content, m.created_at
		FROM messages m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.room_id = $1
		ORDER BY m.created_at ASC
	`

	if err := r.db.SelectContext(ctx, &messages, query, roomID); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}
