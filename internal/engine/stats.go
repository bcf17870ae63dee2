package engine

import "github.com/lil-brisket/Alicard-sub001/internal/game"

// Attributes are the base attribute block of a character, before equipment.
type Attributes struct {
	Vitality  int
	Strength  int
	Speed     int
	Dexterity int
}

// CombatStats is the fully aggregated stat block used by the combat resolver
// and by the regen clock's maximums. Derived values:
//
//	maxHP   = 50 + vitality*5
//	maxSP   = 20 + vitality*2 + speed
//	defense = floor(vitality/2) + sum per item of floor(itemVitality/2) + flat
//
// where vitality and speed include equipment bonuses additively.
type CombatStats struct {
	MaxHP     int
	MaxSP     int
	Strength  int
	Speed     int
	Dexterity int
	Defense   int
}

// ComputeCombatStats folds the occupied equipment slots over the base
// attributes. The fold runs on every call; totals are never cached so they
// cannot desync from equip/unequip mutations.
func ComputeCombatStats(base Attributes, equipment []game.EquipmentItem) CombatStats {
	vit := base.Vitality
	str := base.Strength
	spd := base.Speed
	dex := base.Dexterity
	// Per-item vitality contribution to defense is floored independently,
	// not on the summed total.
	def := base.Vitality / 2
	for _, it := range equipment {
		vit += it.BonusVitality
		str += it.BonusStrength
		spd += it.BonusSpeed
		dex += it.BonusDexterity
		def += it.BonusVitality/2 + it.DefenseFlat
	}
	return CombatStats{
		MaxHP:     50 + vit*5,
		MaxSP:     20 + vit*2 + spd,
		Strength:  str,
		Speed:     spd,
		Dexterity: dex,
		Defense:   def,
	}
}
