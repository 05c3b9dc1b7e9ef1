package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkarwowski/bingoroom/internal/domain/input"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/infra/appctx"
	"github.com/mkarwowski/bingoroom/internal/infra/ports/http/dto"
	"github.com/mkarwowski/bingoroom/internal/usecase"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
	}
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.roomUsecase.ListRooms(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "room name is required"})
	}

	if req.Category != models.CategoryScience && req.Category != models.CategorySport {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown category"})
	}

	room, err := h.roomUsecase.CreateRoom(c.Request().Context(), &input.CreateRoomInput{
		Name:       req.Name,
		Category:   req.Category,
		MaxPlayers: req.MaxPlayers,
		Password:   req.Password,
		OwnerID:    userID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) JoinRoom(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	var req dto.JoinRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	member, err := h.roomUsecase.JoinRoom(c.Request().Context(), &input.JoinRoomInput{
		RoomID:   roomID,
		UserID:   userID,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, member)
}

func (h *RoomHandler) ListTiles(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	tiles, err := h.roomUsecase.ListTiles(c.Request().Context(), roomID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, tiles)
}

func (h *RoomHandler) ListMembers(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	members, err := h.roomUsecase.Members(c.Request().Context(), roomID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, members)
}
