package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/mkarwowski/bingoroom/internal/application/constant"
	"github.com/mkarwowski/bingoroom/internal/application/metric"
	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/events"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type GameUsecase interface {
	// ClaimTile пытается занять клетку за игрока и возвращает исход партии
	// после этого клейма.
	ClaimTile(ctx context.Context, roomID, assignmentID, userID uuid.UUID) (*output.ClaimResult, error)
}

type gameUsecase struct {
	claimRetries uint64

	boardRepo repository.BoardRepository
	userRepo  repository.UserRepository
	publisher events.Publisher
}

func NewGameUsecase(
	claimRetries uint64,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	publisher events.Publisher,
) GameUsecase {
	return &gameUsecase{
		claimRetries: claimRetries,
		boardRepo:    boardRepo,
		userRepo:     userRepo,
		publisher:    publisher,
	}
}

func (uc *gameUsecase) ClaimTile(ctx context.Context, roomID, assignmentID, userID uuid.UUID) (*output.ClaimResult, error) {
	var outcome game.Outcome

	// ErrConflict — транзиентная ошибка per-room секции, ретраим её целиком.
	// Бизнес-ошибки (чужая клетка, законченная игра) уходят наверх сразу.
	backoff := retry.WithMaxRetries(uc.claimRetries, retry.NewConstant(25*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error

		outcome, err = uc.boardRepo.Claim(ctx, roomID, assignmentID, userID)
		if errors.Is(err, domain.ErrConflict) {
			metric.IncrementClaimConflicts()
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	metric.IncrementTilesClaimed()

	result := uc.buildResult(ctx, outcome)

	uc.publisher.Publish(roomID, events.Event{Type: events.TypeBoardUpdated})

	if result.GameFinished {
		metric.IncrementGamesFinished(result.WinType)
		uc.publisher.Publish(roomID, events.Event{Type: events.TypeGameFinished, Data: result})
	}

	return result, nil
}

func (uc *gameUsecase) buildResult(ctx context.Context, outcome game.Outcome) *output.ClaimResult {
	result := &output.ClaimResult{
		GameFinished: outcome.Finished(),
	}

	if !outcome.Finished() {
		return result
	}

	result.WinType = string(outcome.Kind)

	switch outcome.Kind {
	case game.OutcomeBingo, game.OutcomeMostTiles:
		result.WinnerID = outcome.WinnerID
		result.WinnerTiles = outcome.Tiles

		if user, err := uc.userRepo.GetByID(ctx, *outcome.WinnerID); err == nil {
			result.WinnerUsername = user.Username
		} else {
			slog.Warn("winner username lookup failed",
				slog.String(constant.UserID, outcome.WinnerID.String()),
				slog.Any(constant.Error, err),
			)
		}

	case game.OutcomeDraw:
		result.DrawTiles = outcome.Tiles

		usernames, err := uc.userRepo.GetUsernames(ctx, outcome.DrawIDs)
		if err != nil {
			slog.Warn("draw usernames lookup failed", slog.Any(constant.Error, err))
		}

		result.DrawUsernames = make([]string, 0, len(outcome.DrawIDs))
		for _, id := range outcome.DrawIDs {
			result.DrawUsernames = append(result.DrawUsernames, usernames[id])
		}
	}

	return result
}
