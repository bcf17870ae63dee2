package game

import (
	"time"

	"gorm.io/gorm"
)

// BattleStatus is the state machine for a combat session. Won, lost and fled
// are terminal: no further actions are accepted once reached.
type BattleStatus string

const (
	BattleStatusActive BattleStatus = "active"
	BattleStatusWon    BattleStatus = "won"
	BattleStatusLost   BattleStatus = "lost"
	BattleStatusFled   BattleStatus = "fled"
)

// Terminal reports whether no further actions are accepted for the status.
func (s BattleStatus) Terminal() bool {
	return s == BattleStatusWon || s == BattleStatusLost || s == BattleStatusFled
}

// Battle is an in-progress combat session between one character and one
// monster. It is created with a snapshot of the character's current HP/SP;
// the snapshot is written back into the character row after each resolved
// turn. The unique index on CharacterID enforces one session per player.
type Battle struct {
	gorm.Model
	CharacterID uint `json:"-" gorm:"uniqueIndex"`

	MonsterKey   string `json:"monster_key" gorm:"size:64"`
	MonsterLevel int    `json:"monster_level"`

	PlayerHP   int `json:"player_hp"`
	PlayerSP   int `json:"player_sp"`
	EnemyHP    int `json:"enemy_hp"`
	EnemyMaxHP int `json:"enemy_max_hp"`

	TurnNumber int `json:"turn_number"`
	// PlayerFirst records the display ordering decided at session start
	// (player acts first iff playerSpeed >= enemySpeed). It is not
	// re-evaluated per turn.
	PlayerFirst bool `json:"player_first"`

	Status BattleStatus `json:"status" gorm:"size:8;index"`

	LastTurnSummary string    `json:"last_turn_summary" gorm:"size:1024"`
	LastActionAt    time.Time `json:"last_action_at"`
}
