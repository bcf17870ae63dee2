package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/lil-brisket/Alicard-sub001/internal/config"
	"github.com/lil-brisket/Alicard-sub001/internal/engine"
	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

// CharacterRepo is the minimal repository interface required by the
// character operations.
type CharacterRepo interface {
	CreateCharacter(c *game.Character) error
	GetCharacterByUUID(uuid string) (*game.Character, error)
	UpdateCharacter(c *game.Character) error
}

// CreateCharacter creates a new character with the configured starting
// attributes, vitals at their maximums and the regen timestamp seeded to the
// creation time. Seeding happens exactly once, here; no other call site ever
// initializes LastRegenAt.
func CreateCharacter(repo CharacterRepo, name string, start config.StartingCharacter, now time.Time) (*game.Character, error) {
	attrs := engine.Attributes{
		Vitality:  start.Vitality,
		Strength:  start.Strength,
		Speed:     start.Speed,
		Dexterity: start.Dexterity,
	}
	stats := engine.ComputeCombatStats(attrs, nil)
	c := &game.Character{
		UUID:             uuid.NewString(),
		Name:             name,
		Vitality:         start.Vitality,
		Strength:         start.Strength,
		Speed:            start.Speed,
		Dexterity:        start.Dexterity,
		CurrentHP:        stats.MaxHP,
		CurrentSP:        stats.MaxSP,
		HPRegenPerMinute: start.HPRegenPerMinute,
		SPRegenPerMinute: start.SPRegenPerMinute,
		LastRegenAt:      now,
		Level:            1,
	}
	if err := repo.CreateCharacter(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CharacterStats folds the character's equipped items over its base
// attributes. The fold runs on every call; nothing is cached.
func CharacterStats(c *game.Character) engine.CombatStats {
	return engine.ComputeCombatStats(engine.Attributes{
		Vitality:  c.Vitality,
		Strength:  c.Strength,
		Speed:     c.Speed,
		Dexterity: c.Dexterity,
	}, c.Equipment)
}

// RefreshVitals loads the character and brings its vitals current through
// the regeneration clock, persisting only when the clock reports an update.
// Every read and every action path calls this first so vitals are always
// current at the moment of decision.
func RefreshVitals(repo CharacterRepo, charUUID string, now time.Time) (*game.Character, error) {
	c, err := repo.GetCharacterByUUID(charUUID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCharacterNotFound
	}
	if err := regenerate(repo, c, now); err != nil {
		return nil, err
	}
	return c, nil
}

// regenerate applies the regen clock to an already-loaded character.
func regenerate(repo CharacterRepo, c *game.Character, now time.Time) error {
	stats := CharacterStats(c)
	res := engine.ApplyRegen(now, engine.Vitals{
		CurrentHP:        c.CurrentHP,
		MaxHP:            stats.MaxHP,
		CurrentSP:        c.CurrentSP,
		MaxSP:            stats.MaxSP,
		HPRegenPerMinute: c.HPRegenPerMinute,
		SPRegenPerMinute: c.SPRegenPerMinute,
		LastRegenAt:      c.LastRegenAt,
	})
	if !res.Updated {
		return nil
	}
	c.CurrentHP = res.HP
	c.CurrentSP = res.SP
	c.LastRegenAt = res.AppliedAt
	return repo.UpdateCharacter(c)
}
