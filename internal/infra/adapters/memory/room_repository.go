package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type roomRepo struct {
	store *Store
}

func NewRoomRepo(store *Store) repository.RoomRepository {
	return &roomRepo{store: store}
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room, ownerColor string, assignments []models.TileAssignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rs := &roomState{
		room: *room,
		members: []models.RoomMember{{
			RoomID:   room.ID,
			UserID:   room.OwnerID,
			Color:    ownerColor,
			JoinedAt: time.Now(),
		}},
		tiles: make([]models.TileAssignment, len(assignments)),
	}
	copy(rs.tiles, assignments)

	r.store.rooms[room.ID] = rs

	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	rs, ok := r.store.roomByID(id)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	copied := rs.room
	return &copied, nil
}

func (r *roomRepo) List(ctx context.Context) ([]output.RoomSummary, error) {
	r.store.mu.RLock()
	states := make([]*roomState, 0, len(r.store.rooms))
	for _, rs := range r.store.rooms {
		states = append(states, rs)
	}
	r.store.mu.RUnlock()

	summaries := make([]output.RoomSummary, 0, len(states))
	createdAt := make(map[uuid.UUID]time.Time, len(states))

	for _, rs := range states {
		rs.mu.Lock()
		summaries = append(summaries, output.RoomSummary{
			ID:           rs.room.ID,
			Name:         rs.room.Name,
			Category:     rs.room.Category,
			HasPassword:  rs.room.HasPassword(),
			MaxPlayers:   rs.room.MaxPlayers,
			PlayersCount: len(rs.members),
		})
		createdAt[rs.room.ID] = rs.room.CreatedAt
		rs.mu.Unlock()
	}

	sort.Slice(summaries, func(i, j int) bool {
		return createdAt[summaries[i].ID].After(createdAt[summaries[j].ID])
	})

	return summaries, nil
}

func (r *roomRepo) AddMember(ctx context.Context, roomID, userID uuid.UUID) (*models.RoomMember, error) {
	rs, ok := r.store.roomByID(roomID)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	usedColors := make([]string, 0, len(rs.members))
	for _, m := range rs.members {
		if m.UserID == userID {
			copied := m
			return &copied, nil
		}
		usedColors = append(usedColors, m.Color)
	}

	if len(rs.members) >= rs.room.MaxPlayers {
		return nil, domain.ErrRoomFull
	}

	member := models.RoomMember{
		RoomID:   roomID,
		UserID:   userID,
		Color:    game.PickColor(usedColors),
		JoinedAt: time.Now(),
	}
	rs.members = append(rs.members, member)

	return &member, nil
}

func (r *roomRepo) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	rs, ok := r.store.roomByID(roomID)
	if !ok {
		return false, nil
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	for _, m := range rs.members {
		if m.UserID == userID {
			return true, nil
		}
	}

	return false, nil
}

func (r *roomRepo) Members(ctx context.Context, roomID uuid.UUID) ([]output.MemberView, error) {
	rs, ok := r.store.roomByID(roomID)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	rs.mu.Lock()
	members := make([]models.RoomMember, len(rs.members))
	copy(members, rs.members)
	rs.mu.Unlock()

	views := make([]output.MemberView, 0, len(members))
	for _, m := range members {
		views = append(views, output.MemberView{
			UserID:   m.UserID,
			Username: r.store.usernameByID(m.UserID),
			Color:    m.Color,
			JoinedAt: m.JoinedAt,
		})
	}

	return views, nil
}
