package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyBoard() []*uuid.UUID {
	return make([]*uuid.UUID, BoardSize)
}

func claim(board []*uuid.UUID, owner uuid.UUID, positions ...int) {
	for _, pos := range positions {
		id := owner
		board[pos] = &id
	}
}

func TestEvaluate_EmptyBoardInProgress(t *testing.T) {
	outcome := Evaluate(emptyBoard())

	assert.Equal(t, OutcomeInProgress, outcome.Kind)
	assert.False(t, outcome.Finished())
}

func TestEvaluate_RowBingo(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	board := emptyBoard()
	claim(board, alice, 10, 11, 12, 13, 14)
	claim(board, bob, 0, 5)

	outcome := Evaluate(board)

	assert.Equal(t, OutcomeBingo, outcome.Kind)
	require.NotNil(t, outcome.WinnerID)
	assert.Equal(t, alice, *outcome.WinnerID)
	assert.Equal(t, Size, outcome.Tiles)
}

func TestEvaluate_ColumnBingo(t *testing.T) {
	alice := uuid.New()

	board := emptyBoard()
	claim(board, alice, 2, 7, 12, 17, 22)

	outcome := Evaluate(board)

	assert.Equal(t, OutcomeBingo, outcome.Kind)
	require.NotNil(t, outcome.WinnerID)
	assert.Equal(t, alice, *outcome.WinnerID)
}

func TestEvaluate_Diagonals(t *testing.T) {
	t.Run("main", func(t *testing.T) {
		alice := uuid.New()

		board := emptyBoard()
		claim(board, alice, 0, 6, 12, 18, 24)

		outcome := Evaluate(board)

		assert.Equal(t, OutcomeBingo, outcome.Kind)
		require.NotNil(t, outcome.WinnerID)
		assert.Equal(t, alice, *outcome.WinnerID)
	})

	t.Run("anti", func(t *testing.T) {
		bob := uuid.New()

		board := emptyBoard()
		claim(board, bob, 4, 8, 12, 16, 20)

		outcome := Evaluate(board)

		assert.Equal(t, OutcomeBingo, outcome.Kind)
		require.NotNil(t, outcome.WinnerID)
		assert.Equal(t, bob, *outcome.WinnerID)
	})
}

func TestEvaluate_MixedLineNotBingo(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	board := emptyBoard()
	claim(board, alice, 0, 1, 2, 3)
	claim(board, bob, 4)

	outcome := Evaluate(board)

	assert.Equal(t, OutcomeInProgress, outcome.Kind)
	assert.Nil(t, outcome.WinnerID)
}

// Линия выигрывает даже у того, кто набрал больше клеток на полной доске.
func TestEvaluate_BingoBeatsTileCount(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	board := emptyBoard()
	claim(board, alice, 0, 1, 2, 3, 4)
	for pos := 5; pos < BoardSize; pos++ {
		claim(board, bob, pos)
	}

	outcome := Evaluate(board)

	assert.Equal(t, OutcomeBingo, outcome.Kind)
	require.NotNil(t, outcome.WinnerID)
	assert.Equal(t, alice, *outcome.WinnerID)
	assert.Equal(t, Size, outcome.Tiles)
}

func TestEvaluate_FullBoardMostTiles(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	// Раскладка без единой линии: по позициям чередуем игроков так, чтобы у
	// alice было 13 клеток, у bob 7, у carol 5.
	owners := []uuid.UUID{
		alice, bob, alice, carol, alice,
		bob, alice, carol, alice, bob,
		alice, carol, bob, alice, carol,
		alice, bob, alice, carol, alice,
		bob, alice, bob, alice, alice,
	}

	board := emptyBoard()
	for pos, owner := range owners {
		claim(board, owner, pos)
	}

	outcome := Evaluate(board)

	assert.Equal(t, OutcomeMostTiles, outcome.Kind)
	require.NotNil(t, outcome.WinnerID)
	assert.Equal(t, alice, *outcome.WinnerID)
	assert.Equal(t, 13, outcome.Tiles)
}

func TestEvaluate_FullBoardDrawIsDeterministic(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	// У alice и bob по 10 клеток, у carol 5, линий нет.
	owners := []uuid.UUID{
		alice, bob, alice, bob, carol,
		bob, alice, bob, carol, alice,
		alice, carol, bob, alice, bob,
		bob, carol, alice, bob, alice,
		carol, alice, bob, alice, bob,
	}

	board := emptyBoard()
	for pos, owner := range owners {
		claim(board, owner, pos)
	}

	first := Evaluate(board)

	assert.Equal(t, OutcomeDraw, first.Kind)
	assert.Nil(t, first.WinnerID)
	assert.Len(t, first.DrawIDs, 2)
	assert.Contains(t, first.DrawIDs, alice)
	assert.Contains(t, first.DrawIDs, bob)
	assert.Equal(t, 10, first.Tiles)

	// Порядок DrawIDs не должен плавать от запуска к запуску.
	for i := 0; i < 10; i++ {
		again := Evaluate(board)
		assert.Equal(t, first.DrawIDs, again.DrawIDs)
	}
}

func TestEvaluate_AlmostFullBoardInProgress(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	owners := []uuid.UUID{
		alice, bob, alice, bob, alice,
		bob, alice, bob, alice, bob,
		alice, bob, alice, bob, alice,
		bob, alice, bob, alice, bob,
		alice, bob, alice, bob, alice,
	}

	board := emptyBoard()
	for pos, owner := range owners {
		claim(board, owner, pos)
	}
	board[12] = nil

	outcome := Evaluate(board)

	assert.Equal(t, OutcomeInProgress, outcome.Kind)
	assert.False(t, outcome.Finished())
}
