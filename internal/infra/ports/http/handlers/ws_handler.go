package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/mkarwowski/bingoroom/internal/application/config"
	"github.com/mkarwowski/bingoroom/internal/application/constant"
	"github.com/mkarwowski/bingoroom/internal/application/metric"
	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/memory"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
	"github.com/mkarwowski/bingoroom/internal/infra/appctx"
)

type WebSocketHandler struct {
	upgrader *websocket.Upgrader

	roomRepo repository.RoomRepository
	eventBus memory.RoomEventBus
}

func NewWebSocketHandler(cfg *config.Config, roomRepo repository.RoomRepository, eventBus memory.RoomEventBus) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if cfg.Debug {
					return true
				}

				return r.Header.Get("Origin") == cfg.Domain
			},
		},
		roomRepo: roomRepo,
		eventBus: eventBus,
	}
}

// Handle подписывает участника на поток событий комнаты. Соединение
// односторонее: клиент только читает, любые его сообщения игнорируются.
func (h *WebSocketHandler) Handle(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.QueryParam("room_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	isMember, err := h.roomRepo.IsMember(c.Request().Context(), roomID, userID)
	if err != nil {
		return respondError(c, err)
	}
	if !isMember {
		return respondError(c, domain.ErrNotAMember)
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"WebSocket upgrade error",
			slog.Any(constant.Error, err),
		)
		return err
	}
	defer ws.Close()

	h.eventBus.Subscribe(roomID, userID, ws)
	defer h.eventBus.Unsubscribe(userID)

	metric.IncrementWSActiveConnections()
	defer metric.DecrementWSActiveConnections()

	if err = ws.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
		return err
	}
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				// WriteControl безопасен параллельно с записями событий из шины,
				// обычный WriteMessage — нет.
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					slog.Error("ping failed", slog.Any(constant.Error, err))
					return
				}
			case <-c.Request().Context().Done():
				return
			}
		}
	}()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		default:
			if _, _, err := ws.ReadMessage(); err != nil {
				h.handleWebsocketError(userID, err)
				return nil
			}
		}
	}
}

func (h *WebSocketHandler) handleWebsocketError(userID uuid.UUID, err error) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway:
			slog.Info("user disconnected from websocket", slog.Any(constant.UserID, userID))
		default:
			slog.Error("websocket close error")
		}
	} else {
		slog.Error(
			"websocket read",
			slog.Any(constant.Error, err),
		)
	}
}
