package engine

import (
	"math"
	"time"
)

// Vitals is the snapshot the regeneration clock operates on.
type Vitals struct {
	CurrentHP int
	MaxHP     int
	CurrentSP int
	MaxSP     int

	HPRegenPerMinute float64
	SPRegenPerMinute float64
	// LastRegenAt must be seeded by the caller (at character creation);
	// the clock never invents a timestamp.
	LastRegenAt time.Time
}

// RegenResult is the computed state after applying elapsed time. Callers
// persist it only when Updated is true, which avoids write amplification on
// repeated instantaneous calls.
type RegenResult struct {
	HP        int
	SP        int
	AppliedAt time.Time
	Updated   bool
}

// ApplyRegen advances the vitals snapshot to now. Elapsed time is clamped to
// zero so clock skew never regresses the bookkeeping timestamp, and the
// maximums are the only ceiling on regen speed. The function is idempotent:
// applying the persisted result again with the same now is a no-op.
func ApplyRegen(now time.Time, v Vitals) RegenResult {
	unchanged := RegenResult{HP: v.CurrentHP, SP: v.CurrentSP, AppliedAt: v.LastRegenAt, Updated: false}
	if v.LastRegenAt.IsZero() {
		// Uninitialized snapshot; the caller must seed the timestamp first.
		return unchanged
	}
	elapsed := now.Sub(v.LastRegenAt)
	if elapsed <= 0 {
		return unchanged
	}
	minutes := elapsed.Minutes()
	hp := v.CurrentHP + int(math.Round(v.HPRegenPerMinute*minutes))
	sp := v.CurrentSP + int(math.Round(v.SPRegenPerMinute*minutes))
	hp = clampVital(hp, v.MaxHP)
	sp = clampVital(sp, v.MaxSP)
	return RegenResult{HP: hp, SP: sp, AppliedAt: now, Updated: true}
}

func clampVital(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
