package storage

import (
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

// Repository is the persistence surface of the server. Lookup methods return
// (nil, nil) when the record does not exist; callers decide whether absence
// is an error. Content lookups (monsters, actions, skills) are served from
// the config tables held in memory — the config is the source of truth and
// content is never persisted.
type Repository interface {
	CreateCharacter(c *game.Character) error
	GetCharacterByUUID(uuid string) (*game.Character, error)
	GetCharacterByID(id uint) (*game.Character, error)
	UpdateCharacter(c *game.Character) error

	GetJob(characterID uint, jobKey string) (*game.Job, error)

	GetBattle(characterID uint) (*game.Battle, error)
	CreateBattle(b *game.Battle) error
	DeleteBattle(b *game.Battle) error
	// SaveBattleTurn persists the resolved turn and the character's updated
	// vitals in one transaction.
	SaveBattleTurn(c *game.Character, b *game.Battle) error
	// FindIdleBattles returns active battles whose last action is at or
	// before the cutoff; the caller decides how to expire them.
	FindIdleBattles(cutoff time.Time) ([]game.Battle, error)

	GetTraining(characterID uint) (*game.Training, error)
	CreateTraining(t *game.Training) error
	DeleteTraining(t *game.Training) error
	// ApplyTrainingOutcome persists one catch-up run atomically: character
	// vitals, job progression, inventory deltas and the commitment update
	// (or its deletion when the run aborted).
	ApplyTrainingOutcome(c *game.Character, t *game.Training, deleted bool, job *game.Job, itemDeltas map[string]int) error

	TopKillers(limit int) ([]game.Character, error)

	GetMonster(key string) (*game.Monster, error)
	GetAction(key string) (*game.TrainingAction, error)
	GetSkill(key string) (*game.Skill, error)
	ListMonsters() []game.Monster
	ListActions() []game.TrainingAction
	ListSkills() []game.Skill
}
