package game

import (
	"sort"

	"github.com/google/uuid"
)

// Evaluate вычисляет исход партии по 25 клеткам доски (claims[pos] == nil —
// клетка не занята). Проверки идут в строгом приоритете: ряды, колонки,
// диагонали, затем — только на полной доске — подсчёт клеток с разрешением
// most_tiles/draw. Функция чистая и детерминированная.
func Evaluate(claims []*uuid.UUID) Outcome {
	if len(claims) != BoardSize {
		return Outcome{Kind: OutcomeInProgress}
	}

	for row := 0; row < Size; row++ {
		if owner, ok := lineOwner(claims, row*Size, 1); ok {
			return lineBingo(owner)
		}
	}

	for col := 0; col < Size; col++ {
		if owner, ok := lineOwner(claims, col, Size); ok {
			return lineBingo(owner)
		}
	}

	// Главная диагональ, затем побочная.
	if owner, ok := lineOwner(claims, 0, Size+1); ok {
		return lineBingo(owner)
	}
	if owner, ok := lineOwner(claims, Size-1, Size-1); ok {
		return lineBingo(owner)
	}

	counts := make(map[uuid.UUID]int, Size)
	for _, c := range claims {
		if c == nil {
			return Outcome{Kind: OutcomeInProgress}
		}
		counts[*c]++
	}

	return resolveFullBoard(counts)
}

// lineOwner возвращает владельца линии из 5 клеток, начинающейся в start с
// шагом step, если все пять заняты одним игроком.
func lineOwner(claims []*uuid.UUID, start, step int) (uuid.UUID, bool) {
	first := claims[start]
	if first == nil {
		return uuid.Nil, false
	}

	for i := 1; i < Size; i++ {
		c := claims[start+i*step]
		if c == nil || *c != *first {
			return uuid.Nil, false
		}
	}

	return *first, true
}

func lineBingo(owner uuid.UUID) Outcome {
	return Outcome{
		Kind:     OutcomeBingo,
		WinnerID: &owner,
		Tiles:    Size,
	}
}

// resolveFullBoard — доска полна, линии нет: побеждает единственный максимум
// по числу клеток, при дележе максимума — ничья между всеми претендентами.
func resolveFullBoard(counts map[uuid.UUID]int) Outcome {
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	var top []uuid.UUID
	for id, n := range counts {
		if n == max {
			top = append(top, id)
		}
	}

	if len(top) == 1 {
		winner := top[0]
		return Outcome{
			Kind:     OutcomeMostTiles,
			WinnerID: &winner,
			Tiles:    max,
		}
	}

	// Стабильный порядок id, чтобы ответ не зависел от обхода map.
	sort.Slice(top, func(i, j int) bool {
		return top[i].String() < top[j].String()
	})

	return Outcome{
		Kind:    OutcomeDraw,
		DrawIDs: top,
		Tiles:   max,
	}
}
