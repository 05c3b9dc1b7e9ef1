package game

import "math/rand"

// Palette — пять цветов игроков в комнате. При <=5 участниках цвета всегда
// различны; запасная ветка со случайным выбором срабатывает только если
// занятых цветов оказалось больше, чем палитра (и это осознанное упрощение).
var Palette = []string{
	"#e74c3c",
	"#3498db",
	"#2ecc71",
	"#f1c40f",
	"#9b59b6",
}

// PickColor возвращает первый свободный цвет палитры, а когда свободных нет —
// псевдослучайный из палитры.
func PickColor(used []string) string {
	taken := make(map[string]bool, len(used))
	for _, c := range used {
		taken[c] = true
	}

	for _, c := range Palette {
		if !taken[c] {
			return c
		}
	}

	return Palette[rand.Intn(len(Palette))]
}
