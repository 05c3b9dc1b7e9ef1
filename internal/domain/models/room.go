package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain/input"
)

// MaxRoomPlayers — жёсткий потолок размера комнаты, больше не бывает.
const MaxRoomPlayers = 5

type Room struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Category     string     `json:"category" db:"category"`
	PasswordHash *string    `json:"-" db:"password_hash"`
	MaxPlayers   int        `json:"max_players" db:"max_players"`
	OwnerID      uuid.UUID  `json:"owner_id" db:"owner_id"`
	Done         bool       `json:"done" db:"done"`
	WinnerID     *uuid.UUID `json:"winner_id" db:"winner_uid"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

func NewRoom(in *input.CreateRoomInput, passwordHash *string) *Room {
	maxPlayers := in.MaxPlayers
	if maxPlayers <= 0 || maxPlayers > MaxRoomPlayers {
		maxPlayers = MaxRoomPlayers
	}

	return &Room{
		ID:           uuid.New(),
		Name:         in.Name,
		Category:     in.Category,
		PasswordHash: passwordHash,
		MaxPlayers:   maxPlayers,
		OwnerID:      in.OwnerID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func (r *Room) HasPassword() bool {
	return r.PasswordHash != nil && *r.PasswordHash != ""
}

type RoomMember struct {
	RoomID   uuid.UUID `json:"room_id" db:"room_id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Color    string    `json:"color" db:"color"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}
