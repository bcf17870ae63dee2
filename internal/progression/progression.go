// Package progression implements the shared experience curve. Combat rewards
// and training rewards both level through it so a single curve parameter
// tunes the whole game.
package progression

import "math"

// RequiredXP returns the experience needed to advance from the given level
// to the next one: floor(100 * level^curve).
func RequiredXP(level int, curve float64) int64 {
	if level < 1 {
		level = 1
	}
	return int64(math.Floor(100 * math.Pow(float64(level), curve)))
}

// AddXP grants experience on top of the current level/xp pair and resolves
// any level-ups. Large grants may advance several levels in one call.
func AddXP(level int, xp, gained int64, curve float64) (newLevel int, newXP int64, leveledUp bool) {
	if level < 1 {
		level = 1
	}
	if gained < 0 {
		gained = 0
	}
	newLevel = level
	newXP = xp + gained
	for newXP >= RequiredXP(newLevel, curve) {
		newXP -= RequiredXP(newLevel, curve)
		newLevel++
		leveledUp = true
	}
	return newLevel, newXP, leveledUp
}
