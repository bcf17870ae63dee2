package game

import (
	"time"

	"gorm.io/gorm"
)

// Character is the player aggregate. It is the single source of truth for
// vitals: every subsystem (regen clock, battles, training) reads and writes
// HP/SP through this row, which also acts as the per-player serialization
// point at the persistence layer.
type Character struct {
	gorm.Model
	UUID string `json:"uuid" gorm:"uniqueIndex;size:36"`
	Name string `json:"name" gorm:"size:32"`

	// Base attributes. Equipment bonuses are folded on top of these at the
	// moment stats are needed and are never persisted as totals.
	Vitality  int `json:"vitality"`
	Strength  int `json:"strength"`
	Speed     int `json:"speed"`
	Dexterity int `json:"dexterity"`

	CurrentHP int `json:"current_hp"`
	CurrentSP int `json:"current_sp"`
	// Regeneration rates are per minute of wall-clock time.
	HPRegenPerMinute float64 `json:"hp_regen_per_minute"`
	SPRegenPerMinute float64 `json:"sp_regen_per_minute"`
	// LastRegenAt is seeded exactly once at character creation and only
	// ever moves forward afterwards.
	LastRegenAt time.Time `json:"last_regen_at"`

	Level int   `json:"level"`
	XP    int64 `json:"xp"`
	Gold  int64 `json:"gold"`

	Kills  int `json:"kills"`
	Deaths int `json:"deaths"`

	Equipment []EquipmentItem `json:"equipment"`
	Items     []InventoryItem `json:"items"`
	Jobs      []Job           `json:"jobs"`
}

// EquipmentItem is one occupied equipment slot. Stat bonuses live on the row
// so defense and derived maximums can be recomputed from the slot set on
// every stat request.
type EquipmentItem struct {
	gorm.Model
	CharacterID uint   `json:"-" gorm:"index:idx_character_slot,unique"`
	Slot        string `json:"slot" gorm:"index:idx_character_slot,unique;size:16"`
	ItemKey     string `json:"item_key" gorm:"size:64"`
	Name        string `json:"name" gorm:"size:64"`

	BonusVitality  int `json:"bonus_vitality"`
	BonusStrength  int `json:"bonus_strength"`
	BonusSpeed     int `json:"bonus_speed"`
	BonusDexterity int `json:"bonus_dexterity"`
	// DefenseFlat is added to defense as-is, on top of the per-item
	// floor(vitality/2) contribution.
	DefenseFlat int `json:"defense_flat"`
}

// MaxEquipmentSlots bounds the number of occupied slots per character.
const MaxEquipmentSlots = 12

// InventoryItem is a single item stack, keyed by the canonical item key.
type InventoryItem struct {
	gorm.Model
	CharacterID uint   `json:"-" gorm:"index:idx_character_item,unique"`
	ItemKey     string `json:"item_key" gorm:"index:idx_character_item,unique;size:64"`
	Quantity    int    `json:"quantity"`
}

// Job tracks a character's progression in one training discipline
// (e.g. mining, smithing). Leveling goes through the shared experience curve.
type Job struct {
	gorm.Model
	CharacterID uint   `json:"-" gorm:"index:idx_character_job,unique"`
	JobKey      string `json:"job_key" gorm:"index:idx_character_job,unique;size:64"`
	Level       int    `json:"level"`
	XP          int64  `json:"xp"`
}
