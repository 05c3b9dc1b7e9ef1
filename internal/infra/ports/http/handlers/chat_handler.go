package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkarwowski/bingoroom/internal/domain/input"
	"github.com/mkarwowski/bingoroom/internal/infra/appctx"
	"github.com/mkarwowski/bingoroom/internal/infra/ports/http/dto"
	"github.com/mkarwowski/bingoroom/internal/usecase"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	messages, err := h.chatUsecase.ListMessages(c.Request().Context(), roomID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message content is required"})
	}

	message, err := h.chatUsecase.SendMessage(c.Request().Context(), &input.SendMessageInput{
		RoomID:  roomID,
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, message)
}
