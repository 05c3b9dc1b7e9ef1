package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkarwowski/bingoroom/internal/infra/appctx"
	"github.com/mkarwowski/bingoroom/internal/usecase"
)

type GameHandler struct {
	gameUsecase usecase.GameUsecase
}

func NewGameHandler(gameUsecase usecase.GameUsecase) *GameHandler {
	return &GameHandler{
		gameUsecase: gameUsecase,
	}
}

// ClaimTile — игрок отмечает задачу выполненной. В ответе — закончилась ли
// игра и чем именно.
func (h *GameHandler) ClaimTile(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user ID in context"})
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	assignmentID, err := uuid.Parse(c.Param("assignmentID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid assignment id"})
	}

	result, err := h.gameUsecase.ClaimTile(c.Request().Context(), roomID, assignmentID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
