package engine

import (
	"math"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

// ScaleMonster derives the per-encounter stat block from a monster template:
// each stat is independently floor(base * (1 + (level-1)*0.3)). Levels below
// 1 are treated as 1.
func ScaleMonster(m game.Monster, level int) CombatStats {
	if level < 1 {
		level = 1
	}
	factor := 1 + float64(level-1)*0.3
	scale := func(v int) int {
		return int(math.Floor(float64(v) * factor))
	}
	return CombatStats{
		MaxHP:    scale(m.MaxHP),
		Strength: scale(m.Strength),
		Speed:    scale(m.Speed),
		Defense:  scale(m.Defense),
	}
}
