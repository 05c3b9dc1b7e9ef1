package metric

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer — отдельный echo под /metrics и /health: скрейп и liveness не
// ходят через основной API и его middleware.
func NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", healthHandler)

	return e
}

func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
