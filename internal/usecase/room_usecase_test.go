package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/catalog"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/input"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/memory"
)

type roomFixture struct {
	store *memory.Store

	roomUsecase RoomUsecase
	userUsecase UserUsecase
}

func newRoomFixture(t *testing.T, seedCatalog bool) *roomFixture {
	t.Helper()

	store := memory.NewStore()

	userRepo := memory.NewUserRepo(store)
	taskRepo := memory.NewTaskRepo(store)
	roomRepo := memory.NewRoomRepo(store)
	boardRepo := memory.NewBoardRepo(store)

	if seedCatalog {
		require.NoError(t, taskRepo.Seed(context.Background(), catalog.All()))
	}

	return &roomFixture{
		store:       store,
		roomUsecase: NewRoomUsecase(roomRepo, boardRepo, taskRepo, userRepo),
		userUsecase: NewUserUsecase([]byte("test-secret"), userRepo),
	}
}

func (f *roomFixture) registerUser(t *testing.T, username string) uuid.UUID {
	t.Helper()

	user, err := f.userUsecase.Register(context.Background(), username+"@test.local", username, "secret123")
	require.NoError(t, err)

	return user.ID
}

func TestCreateRoom_BuildsFullBoard(t *testing.T) {
	f := newRoomFixture(t, true)
	ctx := context.Background()

	ownerID := f.registerUser(t, "owner")

	room, err := f.roomUsecase.CreateRoom(ctx, &input.CreateRoomInput{
		Name:       "science night",
		Category:   models.CategoryScience,
		MaxPlayers: 4,
		OwnerID:    ownerID,
	})
	require.NoError(t, err)

	assert.Equal(t, "science night", room.Name)
	assert.Equal(t, models.CategoryScience, room.Category)
	assert.False(t, room.HasPassword)
	assert.Equal(t, 4, room.MaxPlayers)
	assert.Equal(t, 1, room.PlayersCount)

	tiles, err := f.roomUsecase.ListTiles(ctx, room.ID, ownerID)
	require.NoError(t, err)
	require.Len(t, tiles, game.BoardSize)

	seen := make(map[string]bool, len(tiles))
	for i, tile := range tiles {
		assert.Equal(t, i, tile.Position)
		assert.NotEmpty(t, tile.Description)
		assert.False(t, seen[tile.Description], "duplicate task on board")
		seen[tile.Description] = true
	}
}

func TestCreateRoom_InsufficientTasks(t *testing.T) {
	f := newRoomFixture(t, false)

	ownerID := f.registerUser(t, "owner")

	_, err := f.roomUsecase.CreateRoom(context.Background(), &input.CreateRoomInput{
		Name:     "empty catalog",
		Category: models.CategoryScience,
		OwnerID:  ownerID,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientTasks)
}

func TestCreateRoom_ClampsMaxPlayers(t *testing.T) {
	f := newRoomFixture(t, true)

	ownerID := f.registerUser(t, "owner")

	room, err := f.roomUsecase.CreateRoom(context.Background(), &input.CreateRoomInput{
		Name:       "crowded",
		Category:   models.CategorySport,
		MaxPlayers: 50,
		OwnerID:    ownerID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MaxRoomPlayers, room.MaxPlayers)
}

func TestJoinRoom_Password(t *testing.T) {
	f := newRoomFixture(t, true)
	ctx := context.Background()

	ownerID := f.registerUser(t, "owner")
	guestID := f.registerUser(t, "guest")

	room, err := f.roomUsecase.CreateRoom(ctx, &input.CreateRoomInput{
		Name:       "locked",
		Category:   models.CategorySport,
		MaxPlayers: 3,
		Password:   "hunter2",
		OwnerID:    ownerID,
	})
	require.NoError(t, err)
	assert.True(t, room.HasPassword)

	_, err = f.roomUsecase.JoinRoom(ctx, &input.JoinRoomInput{
		RoomID:   room.ID,
		UserID:   guestID,
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	member, err := f.roomUsecase.JoinRoom(ctx, &input.JoinRoomInput{
		RoomID:   room.ID,
		UserID:   guestID,
		Password: "hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, guestID, member.UserID)
	assert.Equal(t, "guest", member.Username)
	assert.Contains(t, game.Palette, member.Color)
}

func TestJoinRoom_UnknownRoom(t *testing.T) {
	f := newRoomFixture(t, true)

	guestID := f.registerUser(t, "guest")

	_, err := f.roomUsecase.JoinRoom(context.Background(), &input.JoinRoomInput{
		RoomID: uuid.New(),
		UserID: guestID,
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestListTiles_RequiresMembership(t *testing.T) {
	f := newRoomFixture(t, true)
	ctx := context.Background()

	ownerID := f.registerUser(t, "owner")
	strangerID := f.registerUser(t, "stranger")

	room, err := f.roomUsecase.CreateRoom(ctx, &input.CreateRoomInput{
		Name:     "private board",
		Category: models.CategoryScience,
		OwnerID:  ownerID,
	})
	require.NoError(t, err)

	_, err = f.roomUsecase.ListTiles(ctx, room.ID, strangerID)
	assert.ErrorIs(t, err, domain.ErrNotAMember)
}
