package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
)

type BoardRepository interface {
	// ListTiles возвращает 25 клеток доски в порядке позиций, с цветом
	// занявшего игрока вместо сырого id для отрисовки.
	ListTiles(ctx context.Context, roomID uuid.UUID) ([]models.BoardTile, error)

	// Claim выполняет критическую секцию claim -> evaluate -> finalize одной
	// транзакцией под блокировкой строки комнаты. Ровно один клейм на клетку;
	// клеймы в разных комнатах друг друга не тормозят.
	Claim(ctx context.Context, roomID, assignmentID, userID uuid.UUID) (game.Outcome, error)
}

type boardRepo struct {
	db *sqlx.DB
}

func NewBoardRepo(db *sqlx.DB) BoardRepository {
	return &boardRepo{db: db}
}

func (r *boardRepo) ListTiles(ctx context.Context, roomID uuid.UUID) ([]models.BoardTile, error) {
	tiles := []models.BoardTile{}

	query := `
		SELECT
			a.id AS assignment_id,
			a.position,
			t.description,
			a.claimed_by AS finished_by,
			m.color
		FROM assignments a
		INNER JOIN tasks t ON t.id = a.task_id
		LEFT JOIN room_members m ON m.room_id = a.room_id AND m.user_id = a.claimed_by
		WHERE a.room_id = $1
		ORDER BY a.position ASC
	`

	if err := r.db.SelectContext(ctx, &tiles, query, roomID); err != nil {
		return nil, fmt.Errorf("list tiles: %w", err)
	}

	return tiles, nil
}

func (r *boardRepo) Claim(ctx context.Context, roomID, assignmentID, userID uuid.UUID) (game.Outcome, error) {
	var outcome game.Outcome

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return outcome, fmt.Errorf("begin claim tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Одна комната — один писатель: всё дальнейшее идёт под этой блокировкой.
	var room struct {
		Done bool `db:"done"`
	}
	err = tx.GetContext(ctx, &room, "SELECT done FROM rooms WHERE id = $1 FOR UPDATE", roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return outcome, domain.ErrRoomNotFound
		}

		return outcome, asConflict(fmt.Errorf("lock room: %w", err))
	}

	var isMember bool
	err = tx.GetContext(
		ctx,
		&isMember,
		"SELECT EXISTS (SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2)",
		roomID,
		userID,
	)
	if err != nil {
		return outcome, fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return outcome, domain.ErrNotAMember
	}

	if room.Done {
		return outcome, domain.ErrGameFinished
	}

	// check-then-set одним UPDATE: второй конкурирующий клейм увидит 0 строк.
	res, err := tx.ExecContext(
		ctx,
		"UPDATE assignments SET claimed_by = $1 WHERE id = $2 AND room_id = $3 AND claimed_by IS NULL",
		userID,
		assignmentID,
		roomID,
	)
	if err != nil {
		return outcome, asConflict(fmt.Errorf("claim assignment: %w", err))
	}
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		return outcome, domain.ErrTileAlreadyClaimed
	}

	var rows []uuid.NullUUID
	err = tx.SelectContext(
		ctx,
		&rows,
		"SELECT claimed_by FROM assignments WHERE room_id = $1 ORDER BY position ASC",
		roomID,
	)
	if err != nil {
		return outcome, fmt.Errorf("load board: %w", err)
	}

	claims := make([]*uuid.UUID, len(rows))
	for i, row := range rows {
		if row.Valid {
			id := row.UUID
			claims[i] = &id
		}
	}

	outcome = game.Evaluate(claims)

	if outcome.Finished() {
		if err := r.finalize(ctx, tx, roomID, outcome); err != nil {
			return outcome, err
		}
	}

	if err := tx.Commit(); err != nil {
		return outcome, asConflict(fmt.Errorf("commit claim tx: %w", err))
	}

	return outcome, nil
}

// finalize закрывает комнату и обновляет счётчики игроков. Выполняется в той
// же транзакции, что и клейм: либо применяется всё, либо ничего.
func (r *boardRepo) finalize(ctx context.Context, tx *sqlx.Tx, roomID uuid.UUID, outcome game.Outcome) error {
	_, err := tx.ExecContext(
		ctx,
		"UPDATE rooms SET done = TRUE, winner_uid = $1, updated_at = now() WHERE id = $2",
		outcome.WinnerID,
		roomID,
	)
	if err != nil {
		return fmt.Errorf("close room: %w", err)
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE users SET games_played = games_played + 1, updated_at = now()
		 WHERE id IN (SELECT user_id FROM room_members WHERE room_id = $1)`,
		roomID,
	)
	if err != nil {
		return fmt.Errorf("bump games_played: %w", err)
	}

	if outcome.WinnerID != nil {
		_, err = tx.ExecContext(
			ctx,
			"UPDATE users SET games_won = games_won + 1, updated_at = now() WHERE id = $1",
			*outcome.WinnerID,
		)
		if err != nil {
			return fmt.Errorf("bump games_won: %w", err)
		}
	}

	return nil
}
