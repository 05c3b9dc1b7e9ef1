package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/catalog"
	"github.com/mkarwowski/bingoroom/internal/domain/events"
	"github.com/mkarwowski/bingoroom/internal/domain/input"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/memory"
)

func TestSendMessage_FlowAndEvents(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturePublisher{}

	userRepo := memory.NewUserRepo(store)
	taskRepo := memory.NewTaskRepo(store)
	roomRepo := memory.NewRoomRepo(store)
	boardRepo := memory.NewBoardRepo(store)
	messageRepo := memory.NewMessageRepo(store)

	ctx := context.Background()
	require.NoError(t, taskRepo.Seed(ctx, catalog.All()))

	roomUsecase := NewRoomUsecase(roomRepo, boardRepo, taskRepo, userRepo)
	chatUsecase := NewChatUsecase(roomRepo, messageRepo, userRepo, publisher)

	ownerID := newTestUser(t, store, "owner")
	strangerID := newTestUser(t, store, "stranger")

	room, err := roomUsecase.CreateRoom(ctx, &input.CreateRoomInput{
		Name:     "chatty",
		Category: models.CategoryScience,
		OwnerID:  ownerID,
	})
	require.NoError(t, err)

	// Не участник — сообщения не ходят в обе стороны.
	_, err = chatUsecase.SendMessage(ctx, &input.SendMessageInput{
		RoomID:  room.ID,
		UserID:  strangerID,
		Content: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrNotAMember)

	_, err = chatUsecase.ListMessages(ctx, room.ID, strangerID)
	assert.ErrorIs(t, err, domain.ErrNotAMember)

	sent, err := chatUsecase.SendMessage(ctx, &input.SendMessageInput{
		RoomID:  room.ID,
		UserID:  ownerID,
		Content: "first!",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner", sent.Username)
	assert.Equal(t, "first!", sent.Content)
	assert.Equal(t, []string{events.TypeNewMessage}, publisher.types())

	messages, err := chatUsecase.ListMessages(ctx, room.ID, ownerID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, sent.ID, messages[0].ID)
}
