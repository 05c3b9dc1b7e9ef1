package game

import "github.com/google/uuid"

// Размер доски фиксирован: 5x5, позиции row-major.
const (
	Size      = 5
	BoardSize = Size * Size
)

type OutcomeKind string

const (
	OutcomeInProgress OutcomeKind = "in_progress"
	OutcomeBingo      OutcomeKind = "bingo"
	OutcomeMostTiles  OutcomeKind = "most_tiles"
	OutcomeDraw       OutcomeKind = "draw"
)

// Outcome — результат оценки доски. Для bingo и most_tiles заполнен WinnerID,
// для draw — DrawIDs. Tiles: 5 для линии, иначе число клеток победителя
// (или ничейный максимум).
type Outcome struct {
	Kind     OutcomeKind
	WinnerID *uuid.UUID
	DrawIDs  []uuid.UUID
	Tiles    int
}

func (o Outcome) Finished() bool {
	return o.Kind != OutcomeInProgress
}
