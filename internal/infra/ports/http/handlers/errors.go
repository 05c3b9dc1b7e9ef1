package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkarwowski/bingoroom/internal/application/constant"
	"github.com/mkarwowski/bingoroom/internal/domain"
)

// errorStatus маппит доменные ошибки на HTTP статусы. Клейм занятой клетки —
// 403, завершённая игра — 418: так исторически договорились с клиентом.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrNotAMember),
		errors.Is(err, domain.ErrTileAlreadyClaimed):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrGameFinished):
		return http.StatusTeapot
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientTasks):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	status := errorStatus(err)

	if status == http.StatusInternalServerError {
		slog.Error("request failed", slog.Any(constant.Error, err))
		return c.JSON(status, map[string]string{"error": "internal error"})
	}

	return c.JSON(status, map[string]string{"error": err.Error()})
}
