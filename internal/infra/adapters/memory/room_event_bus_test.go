package memory

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarwowski/bingoroom/internal/domain/events"
)

// wsPair поднимает настоящую пару соединений: серверная сторона уходит в шину,
// клиентская читает события.
func wsPair(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	server = <-serverConns
	t.Cleanup(func() { server.Close() })

	return server, client
}

func TestRoomEventBus_PublishReachesRoomSubscribers(t *testing.T) {
	bus := NewRoomEventBus()
	roomID := uuid.New()

	server, client := wsPair(t)
	bus.Subscribe(roomID, uuid.New(), server)

	bus.Publish(roomID, events.Event{Type: events.TypeBoardUpdated})
	bus.Publish(uuid.New(), events.Event{Type: events.TypeGameFinished})

	var event events.Event
	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, client.ReadJSON(&event))

	// Событие чужой комнаты не должно было дойти.
	assert.Equal(t, events.TypeBoardUpdated, event.Type)
}

// Шина пишет события, параллельно по тому же соединению уходят пинги
// keepalive — ровно как в ws-хендлере. Под -race и с проверкой целостности
// кадров это ловит несериализованные записи в один conn.
func TestRoomEventBus_PublishConcurrentWithControlPings(t *testing.T) {
	bus := NewRoomEventBus()
	roomID := uuid.New()

	server, client := wsPair(t)
	bus.Subscribe(roomID, uuid.New(), server)

	const eventCount = 200

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < eventCount; i++ {
			bus.Publish(roomID, events.Event{Type: events.TypeBoardUpdated})
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < eventCount; i++ {
			err := server.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second))
			assert.NoError(t, err)
		}
	}()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))

	for i := 0; i < eventCount; i++ {
		var event events.Event
		require.NoError(t, client.ReadJSON(&event), "event %d", i)
		assert.Equal(t, events.TypeBoardUpdated, event.Type)
	}

	wg.Wait()
}

func TestRoomEventBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewRoomEventBus()
	roomID := uuid.New()
	userID := uuid.New()

	server, client := wsPair(t)
	bus.Subscribe(roomID, userID, server)
	bus.Unsubscribe(userID)

	bus.Publish(roomID, events.Event{Type: events.TypeBoardUpdated})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(200*time.Millisecond)))

	var event events.Event
	assert.Error(t, client.ReadJSON(&event))
}
