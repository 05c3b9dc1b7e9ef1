package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickColor_FirstFiveAreDistinct(t *testing.T) {
	used := make([]string, 0, len(Palette))

	for i := 0; i < len(Palette); i++ {
		color := PickColor(used)

		assert.NotContains(t, used, color)
		assert.Contains(t, Palette, color)

		used = append(used, color)
	}
}

func TestPickColor_ExhaustedPaletteFallsBack(t *testing.T) {
	color := PickColor(Palette)

	assert.Contains(t, Palette, color)
}

func TestPickColor_SkipsTaken(t *testing.T) {
	color := PickColor([]string{Palette[0], Palette[1]})

	assert.Equal(t, Palette[2], color)
}
