package input

import "github.com/google/uuid"

type CreateRoomInput struct {
	Name       string
	Category   string
	MaxPlayers int
	Password   string
	OwnerID    uuid.UUID
}

type JoinRoomInput struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	Password string
}

type SendMessageInput struct {
	RoomID  uuid.UUID
	UserID  uuid.UUID
	Content string
}
