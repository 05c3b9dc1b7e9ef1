package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mkarwowski/bingoroom/internal/application/config"
	"github.com/mkarwowski/bingoroom/internal/infra/ports/http/handlers"
	"github.com/mkarwowski/bingoroom/internal/infra/ports/http/middleware"
)

func New(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	gameHandler *handlers.GameHandler,
	chatHandler *handlers.ChatHandler,
	wsHandler *handlers.WebSocketHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.Domain},
		AllowCredentials: true,
	}))

	api := e.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		v1 := api.Group("/v1")
		v1.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		{
			v1.GET("/me", authHandler.GetMe)

			v1.GET("/ws", wsHandler.Handle)

			v1.GET("/rooms", roomHandler.ListRooms)
			v1.POST("/rooms", roomHandler.CreateRoom)
			v1.POST("/rooms/:id/join", roomHandler.JoinRoom)
			v1.GET("/rooms/:id/tasks", roomHandler.ListTiles)
			v1.GET("/rooms/:id/members", roomHandler.ListMembers)

			v1.POST("/rooms/:id/tasks/:assignmentID/finished", gameHandler.ClaimTile)

			v1.GET("/rooms/:id/messages", chatHandler.ListMessages)
			v1.POST("/rooms/:id/messages", chatHandler.SendMessage)
		}
	}

	return e
}
