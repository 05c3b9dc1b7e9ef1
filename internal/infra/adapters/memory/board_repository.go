package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

type boardRepo struct {
	store *Store
}

func NewBoardRepo(store *Store) repository.BoardRepository {
	return &boardRepo{store: store}
}

func (r *boardRepo) ListTiles(ctx context.Context, roomID uuid.UUID) ([]models.BoardTile, error) {
	rs, ok := r.store.roomByID(roomID)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	colors := make(map[uuid.UUID]string, len(rs.members))
	for _, m := range rs.members {
		colors[m.UserID] = m.Color
	}

	tiles := make([]models.BoardTile, 0, len(rs.tiles))
	for _, t := range rs.tiles {
		tile := models.BoardTile{
			AssignmentID: t.ID,
			Position:     t.Position,
		}

		if task, ok := r.store.taskByID(t.TaskID); ok {
			tile.Description = task.Description
		}

		if t.ClaimedBy != nil {
			claimedBy := *t.ClaimedBy
			tile.FinishedBy = &claimedBy

			if color, ok := colors[claimedBy]; ok {
				c := color
				tile.Color = &c
			}
		}

		tiles = append(tiles, tile)
	}

	return tiles, nil
}

func (r *boardRepo) Claim(ctx context.Context, roomID, assignmentID, userID uuid.UUID) (game.Outcome, error) {
	var outcome game.Outcome

	rs, ok := r.store.roomByID(roomID)
	if !ok {
		return outcome, domain.ErrRoomNotFound
	}

	// Критическая секция комнаты: клейм, оценка доски и финализация под
	// одним мьютексом, как у postgres-адаптера под FOR UPDATE.
	rs.mu.Lock()
	defer rs.mu.Unlock()

	isMember := false
	for _, m := range rs.members {
		if m.UserID == userID {
			isMember = true
			break
		}
	}
	if !isMember {
		return outcome, domain.ErrNotAMember
	}

	if rs.room.Done {
		return outcome, domain.ErrGameFinished
	}

	var target *models.TileAssignment
	for i := range rs.tiles {
		if rs.tiles[i].ID == assignmentID {
			target = &rs.tiles[i]
			break
		}
	}
	if target == nil || target.ClaimedBy != nil {
		return outcome, domain.ErrTileAlreadyClaimed
	}

	claimant := userID
	target.ClaimedBy = &claimant

	claims := make([]*uuid.UUID, game.BoardSize)
	for _, t := range rs.tiles {
		claims[t.Position] = t.ClaimedBy
	}

	outcome = game.Evaluate(claims)

	if outcome.Finished() {
		rs.room.Done = true
		rs.room.WinnerID = outcome.WinnerID

		memberIDs := make([]uuid.UUID, 0, len(rs.members))
		for _, m := range rs.members {
			memberIDs = append(memberIDs, m.UserID)
		}

		r.store.bumpCounters(memberIDs, outcome.WinnerID)
	}

	return outcome, nil
}
