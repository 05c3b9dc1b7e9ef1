package events

import "github.com/google/uuid"

// Типы событий, рассылаемых подписчикам комнаты.
const (
	TypeBoardUpdated = "board_updated"
	TypeGameFinished = "game_finished"
	TypeNewMessage   = "new_message"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Publisher рассылает событие всем подписчикам комнаты. Реализация живёт в
// memory-адаптере, юзкейсы зависят только от интерфейса.
type Publisher interface {
	Publish(roomID uuid.UUID, event Event)
}
