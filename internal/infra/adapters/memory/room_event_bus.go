package memory

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mkarwowski/bingoroom/internal/application/constant"
	"github.com/mkarwowski/bingoroom/internal/domain/events"
)

// RoomEventBus раздаёт события комнаты подписанным WebSocket-соединениям.
type RoomEventBus interface {
	events.Publisher

	Subscribe(roomID, userID uuid.UUID, conn *websocket.Conn)
	Unsubscribe(userID uuid.UUID)
}

type subscriber struct {
	roomID uuid.UUID
	conn   *websocket.Conn

	// Пишущий мьютекс: gorilla не разрешает конкурентные записи в один conn.
	mu sync.Mutex
}

type roomEventBus struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*subscriber
}

func NewRoomEventBus() RoomEventBus {
	return &roomEventBus{
		subs: make(map[uuid.UUID]*subscriber),
	}
}

func (b *roomEventBus) Subscribe(roomID, userID uuid.UUID, conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs[userID] = &subscriber{roomID: roomID, conn: conn}
}

func (b *roomEventBus) Unsubscribe(userID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subs, userID)
}

func (b *roomEventBus) Publish(roomID uuid.UUID, event events.Event) {
	b.mu.RLock()
	targets := make([]*subscriber, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.roomID == roomID {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		sub.mu.Lock()
		err := sub.conn.WriteJSON(event)
		sub.mu.Unlock()

		if err != nil {
			slog.Warn("drop room event",
				slog.String(constant.RoomID, roomID.String()),
				slog.Any(constant.Error, err),
			)
		}
	}
}
