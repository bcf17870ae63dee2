package service

import (
	"testing"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

func TestStartBattle_CreatesSessionSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		character: testCharacter(now),
		monsters:  map[string]*game.Monster{"forest_wolf": {Key: "forest_wolf", Name: "Forest Wolf", Strength: 8, Speed: 9, Defense: 4, MaxHP: 55, XPReward: 35, GoldReward: 12}},
	}

	b, msgs, err := StartBattle(repo, "char-1", "forest_wolf", 3, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != game.BattleStatusActive {
		t.Fatalf("expected an active battle, got %s", b.Status)
	}
	// Level 3 factor is 1.6.
	if b.EnemyHP != 88 || b.EnemyMaxHP != 88 {
		t.Fatalf("expected scaled enemy HP 88, got %d/%d", b.EnemyHP, b.EnemyMaxHP)
	}
	if b.PlayerHP != 75 || b.PlayerSP != 35 {
		t.Fatalf("expected full snapshot vitals, got %d/%d", b.PlayerHP, b.PlayerSP)
	}
	// Wolf speed at level 3 is floor(9*1.6)=14 against player speed 5.
	if b.PlayerFirst {
		t.Fatal("expected the faster wolf to act first")
	}
	if len(msgs) != 2 {
		t.Fatalf("expected intro messages, got %v", msgs)
	}
}

func TestStartBattle_RegenAppliedBeforeSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCharacter(now.Add(-10 * time.Minute))
	c.CurrentHP = 40
	c.CurrentSP = 10
	repo := &mockRepo{
		character: c,
		monsters:  map[string]*game.Monster{"giant_rat": {Key: "giant_rat", Name: "Giant Rat", Strength: 4, Speed: 6, Defense: 2, MaxHP: 30}},
	}

	b, _, err := StartBattle(repo, "char-1", "giant_rat", 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10 minutes at 2 HP/min and 1 SP/min.
	if b.PlayerHP != 60 || b.PlayerSP != 20 {
		t.Fatalf("expected regenerated snapshot 60/20, got %d/%d", b.PlayerHP, b.PlayerSP)
	}
	if repo.characterUpdates == 0 {
		t.Fatal("expected the regenerated vitals persisted")
	}
}

func TestStartBattle_ActiveConflict(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		character: testCharacter(now),
		battle:    &game.Battle{CharacterID: 1, Status: game.BattleStatusActive},
		monsters:  map[string]*game.Monster{"giant_rat": {Key: "giant_rat", Name: "Giant Rat", MaxHP: 30}},
	}

	if _, _, err := StartBattle(repo, "char-1", "giant_rat", 1, now); err != ErrBattleActive {
		t.Fatalf("expected ErrBattleActive, got %v", err)
	}
}

func TestStartBattle_ClearsTerminalLeftover(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		character: testCharacter(now),
		battle:    &game.Battle{CharacterID: 1, Status: game.BattleStatusWon},
		monsters:  map[string]*game.Monster{"giant_rat": {Key: "giant_rat", Name: "Giant Rat", Strength: 4, Speed: 6, Defense: 2, MaxHP: 30}},
	}

	b, _, err := StartBattle(repo, "char-1", "giant_rat", 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.battleDeleted {
		t.Fatal("expected the finished battle row cleared")
	}
	if b.Status != game.BattleStatusActive {
		t.Fatalf("expected a fresh active battle, got %s", b.Status)
	}
}

func TestStartBattle_UnknownMonster(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{character: testCharacter(now)}

	if _, _, err := StartBattle(repo, "char-1", "dragon", 1, now); err != ErrMonsterNotFound {
		t.Fatalf("expected ErrMonsterNotFound, got %v", err)
	}
}

func TestSubmitBattleAction_WinGrantsScaledRewards(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCharacter(now)
	repo := &mockRepo{
		character: c,
		monsters:  map[string]*game.Monster{"giant_rat": {Key: "giant_rat", Name: "Giant Rat", Strength: 4, Speed: 6, Defense: 2, MaxHP: 30, XPReward: 15, GoldReward: 5}},
		battle: &game.Battle{
			CharacterID: 1, MonsterKey: "giant_rat", MonsterLevel: 2,
			PlayerHP: 75, PlayerSP: 35, EnemyHP: 5, EnemyMaxHP: 39,
			Status: game.BattleStatusActive,
		},
	}

	// Damage variance 1.0: strength 10 against scaled defense 2 deals 9.
	rng := &scriptedRng{floats: []float64{0.5}}
	b, msgs, err := SubmitBattleAction(repo, rng, "char-1", "attack", "", now, 1.5, FractionRespawn{HPFraction: 0.5, SPFraction: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != game.BattleStatusWon {
		t.Fatalf("expected won, got %s", b.Status)
	}
	// Rewards scale with the spawn level.
	if c.XP != 30 || c.Gold != 10 {
		t.Fatalf("expected 30 XP and 10 gold at level 2, got %d/%d", c.XP, c.Gold)
	}
	if c.Kills != 1 {
		t.Fatalf("expected kill counted, got %d", c.Kills)
	}
	if !repo.battleSaved {
		t.Fatal("expected the turn persisted")
	}
	if len(msgs) < 3 {
		t.Fatalf("expected attack, defeat and reward messages, got %v", msgs)
	}
}

func TestSubmitBattleAction_LossAppliesRespawn(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCharacter(now)
	repo := &mockRepo{
		character: c,
		monsters:  map[string]*game.Monster{"stone_golem": {Key: "stone_golem", Name: "Stone Golem", Strength: 14, Speed: 3, Defense: 12, MaxHP: 120}},
		battle: &game.Battle{
			CharacterID: 1, MonsterKey: "stone_golem", MonsterLevel: 1,
			PlayerHP: 1, PlayerSP: 35, EnemyHP: 120, EnemyMaxHP: 120,
			Status: game.BattleStatusActive,
		},
	}

	// Player hit then a lethal retaliation: golem strength 14 against
	// defense 2 deals 13 at variance 1.0.
	rng := &scriptedRng{floats: []float64{0.5, 0.5}}
	b, _, err := SubmitBattleAction(repo, rng, "char-1", "attack", "", now, 1.5, FractionRespawn{HPFraction: 0.5, SPFraction: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != game.BattleStatusLost {
		t.Fatalf("expected lost, got %s", b.Status)
	}
	if c.Deaths != 1 {
		t.Fatalf("expected death counted, got %d", c.Deaths)
	}
	// Respawn at half maximums: 75/2=37, 35/2=17.
	if c.CurrentHP != 37 || c.CurrentSP != 17 {
		t.Fatalf("expected respawn vitals 37/17, got %d/%d", c.CurrentHP, c.CurrentSP)
	}
}

func TestSubmitBattleAction_UnknownSkill(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		character: testCharacter(now),
		monsters:  map[string]*game.Monster{"giant_rat": {Key: "giant_rat", Name: "Giant Rat", MaxHP: 30}},
		battle:    &game.Battle{CharacterID: 1, MonsterKey: "giant_rat", MonsterLevel: 1, PlayerHP: 75, PlayerSP: 35, EnemyHP: 30, Status: game.BattleStatusActive},
	}

	_, _, err := SubmitBattleAction(repo, &scriptedRng{}, "char-1", "skill", "fireball", now, 1.5, FractionRespawn{})
	if err != ErrSkillNotFound {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSubmitBattleAction_InsufficientSP(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		character: testCharacter(now),
		monsters:  map[string]*game.Monster{"giant_rat": {Key: "giant_rat", Name: "Giant Rat", MaxHP: 30}},
		skills:    map[string]*game.Skill{"crushing_blow": {Key: "crushing_blow", Name: "Crushing Blow", SPCost: 12, Power: 2.2}},
		battle:    &game.Battle{CharacterID: 1, MonsterKey: "giant_rat", MonsterLevel: 1, PlayerHP: 75, PlayerSP: 3, EnemyHP: 30, Status: game.BattleStatusActive},
	}

	_, _, err := SubmitBattleAction(repo, &scriptedRng{}, "char-1", "skill", "crushing_blow", now, 1.5, FractionRespawn{})
	if err != ErrNotEnoughSP {
		t.Fatalf("expected ErrNotEnoughSP, got %v", err)
	}
	if repo.battleSaved {
		t.Fatal("expected no persistence on a failed action")
	}
}

func TestSubmitBattleAction_NoBattle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{character: testCharacter(now)}

	_, _, err := SubmitBattleAction(repo, &scriptedRng{}, "char-1", "attack", "", now, 1.5, FractionRespawn{})
	if err != ErrBattleNotFound {
		t.Fatalf("expected ErrBattleNotFound, got %v", err)
	}
}

func TestSubmitBattleAction_FinishedBattle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{
		character: testCharacter(now),
		battle:    &game.Battle{CharacterID: 1, MonsterKey: "giant_rat", Status: game.BattleStatusWon},
	}

	_, _, err := SubmitBattleAction(repo, &scriptedRng{}, "char-1", "attack", "", now, 1.5, FractionRespawn{})
	if err != ErrBattleFinished {
		t.Fatalf("expected ErrBattleFinished, got %v", err)
	}
}

func TestExpireIdleBattles(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := testCharacter(now)
	repo := &mockRepo{character: c}
	battles := []game.Battle{{
		CharacterID: 1, MonsterKey: "giant_rat",
		PlayerHP: 42, PlayerSP: 11, EnemyHP: 10,
		Status: game.BattleStatusActive, LastActionAt: now.Add(-time.Hour),
	}}

	ExpireIdleBattles(repo, now.Add(-30*time.Minute), battles)

	if battles[0].Status != game.BattleStatusFled {
		t.Fatalf("expected fled, got %s", battles[0].Status)
	}
	if c.CurrentHP != 42 || c.CurrentSP != 11 {
		t.Fatalf("expected snapshot vitals synced back, got %d/%d", c.CurrentHP, c.CurrentSP)
	}
	if !repo.battleSaved {
		t.Fatal("expected the expiry persisted")
	}
}
