package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/events"
	"github.com/mkarwowski/bingoroom/internal/domain/input"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, in *input.SendMessageInput) (*output.MessageView, error)
	ListMessages(ctx context.Context, roomID, userID uuid.UUID) ([]output.MessageView, error)
}

type chatUsecase struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	publisher   events.Publisher
}

func NewChatUsecase(
	roomRepo repository.RoomRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	publisher events.Publisher,
) ChatUsecase {
	return &chatUsecase{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (uc *chatUsecase) SendMessage(ctx context.Context, in *input.SendMessageInput) (*output.MessageView, error) {
	if err := uc.ensureMember(ctx, in.RoomID, in.UserID); err != nil {
		return nil, err
	}

	message := models.NewMessage(in.RoomID, in.UserID, in.Content)

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	view := &output.MessageView{
		ID:        message.ID,
		UserID:    message.UserID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}

	if user, err := uc.userRepo.GetByID(ctx, in.UserID); err == nil {
		view.Username = user.Username
	}

	uc.publisher.Publish(in.RoomID, events.Event{Type: events.TypeNewMessage, Data: view})

	return view, nil
}

func (uc *chatUsecase) ListMessages(ctx context.Context, roomID, userID uuid.UUID) ([]output.MessageView, error) {
	if err := uc.ensureMember(ctx, roomID, userID); err != nil {
		return nil, err
	}

	return uc.messageRepo.ListByRoom(ctx, roomID)
}

func (uc *chatUsecase) ensureMember(ctx context.Context, roomID, userID uuid.UUID) error {
	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		return err
	}

	isMember, err := uc.roomRepo.IsMember(ctx, roomID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return domain.ErrNotAMember
	}

	return nil
}
