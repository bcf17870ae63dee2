package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

// BattleAction is one of the player actions accepted per turn.
type BattleAction string

const (
	ActionAttack BattleAction = "attack"
	ActionSkill  BattleAction = "skill"
	ActionDefend BattleAction = "defend"
	ActionEscape BattleAction = "escape"
	// ActionItem is reserved for future item effects; it currently does
	// nothing but still yields an enemy turn.
	ActionItem BattleAction = "item"
)

var (
	ErrBattleNotActive = errors.New("battle is not active")
	ErrUnknownAction   = errors.New("unknown battle action")
	ErrSkillRequired   = errors.New("skill action requires a skill")
	ErrInsufficientSP  = errors.New("insufficient SP for skill")
)

// Damage applies the standard damage formula: half the defense mitigates the
// attack, the result is floored at 1, then +-20% uniform variance is applied
// and floored again. The result is never below 1.
func Damage(rng Rng, attack, defense int) int {
	mitigated := defense / 2
	base := attack - mitigated
	if base < 1 {
		base = 1
	}
	variance := 0.8 + rng.Float64()*0.4
	dmg := int(math.Floor(float64(base) * variance))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// EscapeChance is bounded to [0.3, 0.9] regardless of the speed gap.
func EscapeChance(playerSpeed, enemySpeed int) float64 {
	bonus := float64(playerSpeed-enemySpeed) * 0.05
	if bonus < 0 {
		bonus = 0
	}
	if bonus > 0.4 {
		bonus = 0.4
	}
	chance := 0.3 + bonus
	if chance > 0.9 {
		chance = 0.9
	}
	return chance
}

// PlayerActsFirst decides the display ordering announced at session start.
// It is not re-evaluated per turn.
func PlayerActsFirst(playerSpeed, enemySpeed int) bool {
	return playerSpeed >= enemySpeed
}

// ResolveTurn resolves one player action plus the enemy's counter-action,
// mutating the battle snapshot in place and returning human-readable event
// messages. A skill action with insufficient SP fails the whole action with
// no state change. TurnNumber increments once per resolved action regardless
// of outcome. Side effects of terminal states (XP, gold, counters, respawn)
// belong to the caller.
func ResolveTurn(rng Rng, action BattleAction, b *game.Battle, player, enemy CombatStats, skill *game.Skill) ([]string, error) {
	if b.Status != game.BattleStatusActive {
		return nil, ErrBattleNotActive
	}

	msgs := make([]string, 0, 4)
	defending := false

	switch action {
	case ActionAttack:
		dmg := Damage(rng, player.Strength, enemy.Defense)
		b.EnemyHP -= dmg
		msgs = append(msgs, fmt.Sprintf("You attack for %d damage.", dmg))
	case ActionSkill:
		if skill == nil {
			return nil, ErrSkillRequired
		}
		if b.PlayerSP < skill.SPCost {
			return nil, ErrInsufficientSP
		}
		b.PlayerSP -= skill.SPCost
		atk := int(math.Floor(float64(player.Strength) * skill.Power))
		dmg := Damage(rng, atk, enemy.Defense)
		b.EnemyHP -= dmg
		msgs = append(msgs, fmt.Sprintf("You use %s for %d damage (%d SP).", skill.Name, dmg, skill.SPCost))
	case ActionDefend:
		defending = true
		msgs = append(msgs, "You brace for the incoming attack.")
	case ActionEscape:
		chance := EscapeChance(player.Speed, enemy.Speed)
		if rng.Float64() < chance {
			b.Status = game.BattleStatusFled
			b.TurnNumber++
			msgs = append(msgs, "You slip away from the fight.")
			return msgs, nil
		}
		msgs = append(msgs, "You fail to escape!")
	case ActionItem:
		msgs = append(msgs, "Nothing happens.")
	default:
		return nil, ErrUnknownAction
	}

	if b.EnemyHP <= 0 {
		b.EnemyHP = 0
		b.Status = game.BattleStatusWon
		b.TurnNumber++
		msgs = append(msgs, "The enemy is defeated!")
		return msgs, nil
	}

	// Enemy retaliation. Defending halves the hit within the same turn.
	dmg := Damage(rng, enemy.Strength, player.Defense)
	if defending {
		dmg = dmg / 2
		if dmg < 1 {
			dmg = 1
		}
		msgs = append(msgs, fmt.Sprintf("The enemy strikes back for %d damage (halved).", dmg))
	} else {
		msgs = append(msgs, fmt.Sprintf("The enemy strikes back for %d damage.", dmg))
	}
	b.PlayerHP -= dmg
	if b.PlayerHP <= 0 {
		b.PlayerHP = 0
		b.Status = game.BattleStatusLost
		msgs = append(msgs, "You are defeated.")
	}
	b.TurnNumber++
	return msgs, nil
}
