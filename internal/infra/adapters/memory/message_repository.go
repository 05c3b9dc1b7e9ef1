package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type messageRepo struct {
	store *Store
}

func NewMessageRepo(store *Store) repository.MessageRepository {
	return &messageRepo{store: store}
}

func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	rs, ok := r.store.roomByID(message.RoomID)
	if !ok {
		return domain.ErrRoomNotFound
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.messages = append(rs.messages, *message)

	return nil
}

func (r *messageRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]output.MessageView, error) {
	rs, ok := r.store.roomByID(roomID)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	rs.mu.Lock()
	messages := make([]models.Message, len(rs.messages))
	copy(messages, rs.messages)
	rs.mu.Unlock()

	views := make([]output.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, output.MessageView{
			ID:        m.ID,
			UserID:    m.UserID,
			Username:  r.store.usernameByID(m.UserID),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	return views, nil
}
