package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
)

func TestAddMember_RoomFull(t *testing.T) {
	store := NewStore()
	roomRepo := NewRoomRepo(store)

	roomID, _, _ := testRoom(t, store, models.MaxRoomPlayers)

	_, err := roomRepo.AddMember(context.Background(), roomID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestAddMember_Idempotent(t *testing.T) {
	store := NewStore()
	roomRepo := NewRoomRepo(store)

	roomID, userIDs, _ := testRoom(t, store, 2)
	ctx := context.Background()

	first, err := roomRepo.AddMember(ctx, roomID, userIDs[1])
	require.NoError(t, err)

	second, err := roomRepo.AddMember(ctx, roomID, userIDs[1])
	require.NoError(t, err)

	assert.Equal(t, first.Color, second.Color)

	members, err := roomRepo.Members(ctx, roomID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestAddMember_DistinctColors(t *testing.T) {
	store := NewStore()
	roomRepo := NewRoomRepo(store)

	roomID, _, _ := testRoom(t, store, models.MaxRoomPlayers)

	members, err := roomRepo.Members(context.Background(), roomID)
	require.NoError(t, err)
	require.Len(t, members, models.MaxRoomPlayers)

	seen := make(map[string]bool, len(members))
	for _, m := range members {
		assert.Contains(t, game.Palette, m.Color)
		assert.False(t, seen[m.Color], "color %s used twice", m.Color)
		seen[m.Color] = true
	}
}

func TestList_CountsAndPasswordFlag(t *testing.T) {
	store := NewStore()
	roomRepo := NewRoomRepo(store)

	roomID, _, _ := testRoom(t, store, 3)

	hash := "$2a$10$fakefakefakefakefakefake"
	locked := &models.Room{
		ID:           uuid.New(),
		Name:         "locked",
		Category:     models.CategorySport,
		PasswordHash: &hash,
		MaxPlayers:   2,
		OwnerID:      uuid.New(),
	}
	require.NoError(t, roomRepo.Create(context.Background(), locked, game.PickColor(nil), nil))

	rooms, err := roomRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	for _, summary := range rooms {
		switch summary.ID {
		case roomID:
			assert.False(t, summary.HasPassword)
			assert.Equal(t, 3, summary.PlayersCount)
		case locked.ID:
			assert.True(t, summary.HasPassword)
			assert.Equal(t, 1, summary.PlayersCount)
		default:
			t.Fatalf("unexpected room %s", summary.ID)
		}
	}
}
