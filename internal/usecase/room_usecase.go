package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/input"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type RoomUsecase interface {
	CreateRoom(ctx context.Context, in *input.CreateRoomInput) (*output.RoomSummary, error)
	ListRooms(ctx context.Context) ([]output.RoomSummary, error)
	JoinRoom(ctx context.Context, in *input.JoinRoomInput) (*output.MemberView, error)
	ListTiles(ctx context.Context, roomID, userID uuid.UUID) ([]models.BoardTile, error)
	Members(ctx context.Context, roomID, userID uuid.UUID) ([]output.MemberView, error)
}

type roomUsecase struct {
	roomRepo  repository.RoomRepository
	boardRepo repository.BoardRepository
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
}

func NewRoomUsecase(
	roomRepo repository.RoomRepository,
	boardRepo repository.BoardRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
) RoomUsecase {
	return &roomUsecase{
		roomRepo:  roomRepo,
		boardRepo: boardRepo,
		taskRepo:  taskRepo,
		userRepo:  userRepo,
	}
}

// CreateRoom создаёт комнату вместе с доской: 25 случайных задач категории,
// без повторов, позиции row-major. Создатель сразу становится участником.
func (uc *roomUsecase) CreateRoom(ctx context.Context, in *input.CreateRoomInput) (*output.RoomSummary, error) {
	tasks, err := uc.taskRepo.SampleByCategory(ctx, in.Category, game.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("sample tasks: %w", err)
	}
	if len(tasks) < game.BoardSize {
		return nil, domain.ErrInsufficientTasks
	}

	var passwordHash *string
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash room password: %w", err)
		}

		s := string(hashed)
		passwordHash = &s
	}

	room := models.NewRoom(in, passwordHash)

	assignments := make([]models.TileAssignment, 0, game.BoardSize)
	for position, task := range tasks {
		assignments = append(assignments, models.TileAssignment{
			ID:       uuid.New(),
			RoomID:   room.ID,
			TaskID:   task.ID,
			Position: position,
		})
	}

	if err := uc.roomRepo.Create(ctx, room, game.PickColor(nil), assignments); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return &output.RoomSummary{
		ID:           room.ID,
		Name:         room.Name,
		Category:     room.Category,
		HasPassword:  room.HasPassword(),
		MaxPlayers:   room.MaxPlayers,
		PlayersCount: 1,
	}, nil
}

func (uc *roomUsecase) ListRooms(ctx context.Context) ([]output.RoomSummary, error) {
	return uc.roomRepo.List(ctx)
}

func (uc *roomUsecase) JoinRoom(ctx context.Context, in *input.JoinRoomInput) (*output.MemberView, error) {
	room, err := uc.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	// Пароль комнаты не меняется, поэтому проверка до блокировки безопасна.
	if room.HasPassword() {
		if err := bcrypt.CompareHashAndPassword([]byte(*room.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrInvalidPassword
		}
	}

	member, err := uc.roomRepo.AddMember(ctx, in.RoomID, in.UserID)
	if err != nil {
		return nil, err
	}

	view := &output.MemberView{
		UserID:   member.UserID,
		Color:    member.Color,
		JoinedAt: member.JoinedAt,
	}

	if user, err := uc.userRepo.GetByID(ctx, member.UserID); err == nil {
		view.Username = user.Username
	}

	return view, nil
}

func (uc *roomUsecase) ListTiles(ctx context.Context, roomID, userID uuid.UUID) ([]models.BoardTile, error) {
	if err := uc.ensureMember(ctx, roomID, userID); err != nil {
		return nil, err
	}

	return uc.boardRepo.ListTiles(ctx, roomID)
}

func (uc *roomUsecase) Members(ctx context.Context, roomID, userID uuid.UUID) ([]output.MemberView, error) {
	if err := uc.ensureMember(ctx, roomID, userID); err != nil {
		return nil, err
	}

	return uc.roomRepo.Members(ctx, roomID)
}

func (uc *roomUsecase) ensureMember(ctx context.Context, roomID, userID uuid.UUID) error {
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
