package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
)

func TestAll_CatalogShape(t *testing.T) {
	tasks := All()

	seen := make(map[int]bool, len(tasks))
	perCategory := make(map[string]int, 2)

	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate task id %d", task.ID)
		seen[task.ID] = true

		assert.NotEmpty(t, task.Description)

		perCategory[task.Category]++
	}

	// В каждой категории задач должно хватать на полную доску.
	assert.GreaterOrEqual(t, perCategory[models.CategoryScience], game.BoardSize)
	assert.GreaterOrEqual(t, perCategory[models.CategorySport], game.BoardSize)
}
