package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/engine"
	"github.com/lil-brisket/Alicard-sub001/internal/game"
	"github.com/lil-brisket/Alicard-sub001/internal/logging"
	"github.com/lil-brisket/Alicard-sub001/internal/progression"
)

// BattleRepo is the minimal repository interface required by the battle
// operations.
type BattleRepo interface {
	CharacterRepo
	GetCharacterByID(id uint) (*game.Character, error)

	GetBattle(characterID uint) (*game.Battle, error)
	CreateBattle(b *game.Battle) error
	DeleteBattle(b *game.Battle) error
	SaveBattleTurn(c *game.Character, b *game.Battle) error

	GetMonster(key string) (*game.Monster, error)
	GetSkill(key string) (*game.Skill, error)
}

// RespawnPolicy decides what happens to a defeated character. The battle
// flow only reports the defeat and increments the death counter; respawn
// location, restoration fractions and any permanent-death rule live behind
// this interface.
type RespawnPolicy interface {
	ApplyDeath(c *game.Character, stats engine.CombatStats)
}

// FractionRespawn restores a configured fraction of the character's
// maximums, never below 1 HP.
type FractionRespawn struct {
	HPFraction float64
	SPFraction float64
}

func (f FractionRespawn) ApplyDeath(c *game.Character, stats engine.CombatStats) {
	hp := int(float64(stats.MaxHP) * f.HPFraction)
	if hp < 1 {
		hp = 1
	}
	sp := int(float64(stats.MaxSP) * f.SPFraction)
	if sp < 0 {
		sp = 0
	}
	c.CurrentHP = hp
	c.CurrentSP = sp
}

// StartBattle opens a combat session against one monster. Vitals are brought
// current first so the session snapshot starts from up-to-date HP/SP. At
// most one session exists per character; a leftover terminal session is
// cleared, an active one is a conflict.
func StartBattle(repo BattleRepo, charUUID, monsterKey string, level int, now time.Time) (*game.Battle, []string, error) {
	c, err := RefreshVitals(repo, charUUID, now)
	if err != nil {
		return nil, nil, err
	}

	existing, err := repo.GetBattle(c.ID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		if existing.Status == game.BattleStatusActive {
			return nil, nil, ErrBattleActive
		}
		if err := repo.DeleteBattle(existing); err != nil {
			return nil, nil, err
		}
	}

	m, err := repo.GetMonster(monsterKey)
	if err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, ErrMonsterNotFound
	}
	if level < 1 {
		level = 1
	}

	stats := CharacterStats(c)
	enemy := engine.ScaleMonster(*m, level)

	b := &game.Battle{
		CharacterID:  c.ID,
		MonsterKey:   m.Key,
		MonsterLevel: level,
		PlayerHP:     c.CurrentHP,
		PlayerSP:     c.CurrentSP,
		EnemyHP:      enemy.MaxHP,
		EnemyMaxHP:   enemy.MaxHP,
		PlayerFirst:  engine.PlayerActsFirst(stats.Speed, enemy.Speed),
		Status:       game.BattleStatusActive,
		LastActionAt: now,
	}

	msgs := []string{fmt.Sprintf("A level %d %s appears!", level, m.Name)}
	if b.PlayerFirst {
		msgs = append(msgs, "You are faster and act first.")
	} else {
		msgs = append(msgs, fmt.Sprintf("The %s is faster and acts first.", m.Name))
	}
	b.LastTurnSummary = strings.Join(msgs, "\n")

	if err := repo.CreateBattle(b); err != nil {
		return nil, nil, err
	}
	return b, msgs, nil
}

// SubmitBattleAction resolves one turn of the character's active battle and
// persists the outcome. During a battle the session snapshot is the
// authoritative copy of HP/SP; the character row is synced from it after
// every resolution, and rewards or the respawn policy are applied when the
// session reaches a terminal state.
func SubmitBattleAction(repo BattleRepo, rng engine.Rng, charUUID string, action engine.BattleAction, skillKey string, now time.Time, xpCurve float64, respawn RespawnPolicy) (*game.Battle, []string, error) {
	c, err := repo.GetCharacterByUUID(charUUID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, ErrCharacterNotFound
	}

	b, err := repo.GetBattle(c.ID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, ErrBattleNotFound
	}
	if b.Status.Terminal() {
		return nil, nil, ErrBattleFinished
	}

	m, err := repo.GetMonster(b.MonsterKey)
	if err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, ErrMonsterNotFound
	}

	var skill *game.Skill
	if action == engine.ActionSkill {
		skill, err = repo.GetSkill(skillKey)
		if err != nil {
			return nil, nil, err
		}
		if skill == nil {
			return nil, nil, ErrSkillNotFound
		}
	}

	playerStats := CharacterStats(c)
	enemyStats := engine.ScaleMonster(*m, b.MonsterLevel)

	msgs, err := engine.ResolveTurn(rng, action, b, playerStats, enemyStats, skill)
	if err != nil {
		switch err {
		case engine.ErrInsufficientSP:
			return nil, nil, ErrNotEnoughSP
		case engine.ErrBattleNotActive:
			return nil, nil, ErrBattleFinished
		default:
			return nil, nil, err
		}
	}

	b.LastTurnSummary = strings.Join(msgs, "\n")
	b.LastActionAt = now

	// Sync the session snapshot back into the vitals source of truth.
	c.CurrentHP = b.PlayerHP
	c.CurrentSP = b.PlayerSP

	switch b.Status {
	case game.BattleStatusWon:
		xp := m.XPReward * int64(b.MonsterLevel)
		gold := m.GoldReward * int64(b.MonsterLevel)
		var leveled bool
		c.Level, c.XP, leveled = progression.AddXP(c.Level, c.XP, xp, xpCurve)
		c.Gold += gold
		c.Kills++
		msgs = append(msgs, fmt.Sprintf("You gain %d XP and %d gold.", xp, gold))
		if leveled {
			msgs = append(msgs, fmt.Sprintf("You reached level %d!", c.Level))
		}
		b.LastTurnSummary = strings.Join(msgs, "\n")
	case game.BattleStatusLost:
		c.Deaths++
		respawn.ApplyDeath(c, playerStats)
		logging.Info("character defeated in battle", logging.Fields{"character_uuid": c.UUID, "monster_key": b.MonsterKey})
	}

	if err := repo.SaveBattleTurn(c, b); err != nil {
		return nil, nil, err
	}
	return b, msgs, nil
}

// ExpireIdleBattles ends active battles whose last action is older than the
// cutoff. Expiry counts as fleeing: not a win, not a loss, no rewards. This
// is the wall-clock timeout policy layered on top of the engine.
func ExpireIdleBattles(repo BattleRepo, cutoff time.Time, battles []game.Battle) {
	for i := range battles {
		b := &battles[i]
		if b.Status != game.BattleStatusActive {
			continue
		}
		c, err := repo.GetCharacterByID(b.CharacterID)
		if err != nil || c == nil {
			logging.Error("failed to load character for idle battle", err, logging.Fields{"battle_id": b.ID})
			continue
		}
		b.Status = game.BattleStatusFled
		b.LastTurnSummary = "The battle ended due to inactivity."
		c.CurrentHP = b.PlayerHP
		c.CurrentSP = b.PlayerSP
		if err := repo.SaveBattleTurn(c, b); err != nil {
			logging.Error("failed to expire idle battle", err, logging.Fields{"battle_id": b.ID})
		}
	}
}
