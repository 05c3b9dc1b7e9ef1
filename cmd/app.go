package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mkarwowski/bingoroom/internal/application/config"
	"github.com/mkarwowski/bingoroom/internal/application/constant"
	"github.com/mkarwowski/bingoroom/internal/application/metric"
	"github.com/mkarwowski/bingoroom/internal/domain/catalog"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/memory"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
	"github.com/mkarwowski/bingoroom/internal/infra/ports/http/handlers"
	"github.com/mkarwowski/bingoroom/internal/infra/ports/http/server"
	"github.com/mkarwowski/bingoroom/internal/usecase"
)

func runApp() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: slog.LevelInfo},
			),
		),
	)

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	// TODO DI
	dbConn, err := postgres.NewPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		slog.Error("connect to postgres", slog.Any(constant.Error, err))
		os.Exit(1)
	}
	defer dbConn.Close()

	userRepo := repository.NewUserRepo(dbConn)
	taskRepo := repository.NewTaskRepo(dbConn)
	roomRepo := repository.NewRoomRepo(dbConn)
	boardRepo := repository.NewBoardRepo(dbConn)
	messageRepo := repository.NewMessageRepo(dbConn)

	// Досыпаем каталог задач при каждом старте, существующие не трогаем.
	if err = taskRepo.Seed(ctx, catalog.All()); err != nil {
		slog.Error("seed task catalog", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	eventBus := memory.NewRoomEventBus()

	userUsecase := usecase.NewUserUsecase([]byte(cfg.JWTSecret), userRepo)
	roomUsecase := usecase.NewRoomUsecase(roomRepo, boardRepo, taskRepo, userRepo)
	gameUsecase := usecase.NewGameUsecase(cfg.ClaimRetries, boardRepo, userRepo, eventBus)
	chatUsecase := usecase.NewChatUsecase(roomRepo, messageRepo, userRepo, eventBus)

	authHandler := handlers.NewAuthHandler(userUsecase)
	roomHandler := handlers.NewRoomHandler(roomUsecase)
	gameHandler := handlers.NewGameHandler(gameUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	wsHandler := handlers.NewWebSocketHandler(cfg, roomRepo, eventBus)

	echoSrv := server.New(cfg, authHandler, roomHandler, gameHandler, chatHandler, wsHandler)

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	// Запускаем HTTP сервер
	go func() {
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	// Запускаем сервер метрик
	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	// Ожидаем сигнал завершения или ошибку сервера
	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		slog.Error(
			"HTTP server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	case err := <-metricsSrvCh:
		slog.Error(
			"Metrics server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	}

	// Graceful shutdown
	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, 5*time.Second)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}
