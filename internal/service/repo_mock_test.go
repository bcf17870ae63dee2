package service

import (
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

// mockRepo is an in-memory repository for one character, used across the
// service tests.
type mockRepo struct {
	character *game.Character
	battle    *game.Battle
	training  *game.Training
	jobs      map[string]*game.Job

	monsters map[string]*game.Monster
	skills   map[string]*game.Skill
	actions  map[string]*game.TrainingAction

	characterUpdates int
	battleSaved      bool
	battleDeleted    bool
	trainingDeleted  bool

	outcomeApplied bool
	outcomeDeleted bool
	outcomeJob     *game.Job
	outcomeDeltas  map[string]int
}

func (m *mockRepo) CreateCharacter(c *game.Character) error {
	c.ID = 1
	m.character = c
	return nil
}

func (m *mockRepo) GetCharacterByUUID(uuid string) (*game.Character, error) {
	if m.character != nil && m.character.UUID == uuid {
		return m.character, nil
	}
	return nil, nil
}

func (m *mockRepo) GetCharacterByID(id uint) (*game.Character, error) {
	if m.character != nil && m.character.ID == id {
		return m.character, nil
	}
	return nil, nil
}

func (m *mockRepo) UpdateCharacter(c *game.Character) error {
	m.character = c
	m.characterUpdates++
	return nil
}

func (m *mockRepo) GetBattle(characterID uint) (*game.Battle, error) {
	if m.battle != nil && m.battle.CharacterID == characterID {
		return m.battle, nil
	}
	return nil, nil
}

func (m *mockRepo) CreateBattle(b *game.Battle) error {
	b.ID = 1
	m.battle = b
	return nil
}

func (m *mockRepo) DeleteBattle(b *game.Battle) error {
	m.battle = nil
	m.battleDeleted = true
	return nil
}

func (m *mockRepo) SaveBattleTurn(c *game.Character, b *game.Battle) error {
	m.character = c
	m.battle = b
	m.battleSaved = true
	return nil
}

func (m *mockRepo) GetJob(characterID uint, jobKey string) (*game.Job, error) {
	if j, ok := m.jobs[jobKey]; ok {
		return j, nil
	}
	return nil, nil
}

func (m *mockRepo) GetTraining(characterID uint) (*game.Training, error) {
	if m.training != nil && m.training.CharacterID == characterID {
		return m.training, nil
	}
	return nil, nil
}

func (m *mockRepo) CreateTraining(t *game.Training) error {
	t.ID = 1
	m.training = t
	return nil
}

func (m *mockRepo) DeleteTraining(t *game.Training) error {
	m.training = nil
	m.trainingDeleted = true
	return nil
}

func (m *mockRepo) ApplyTrainingOutcome(c *game.Character, t *game.Training, deleted bool, job *game.Job, itemDeltas map[string]int) error {
	m.character = c
	m.outcomeApplied = true
	m.outcomeDeleted = deleted
	m.outcomeJob = job
	m.outcomeDeltas = itemDeltas
	if deleted {
		m.training = nil
	} else {
		m.training = t
	}
	return nil
}

func (m *mockRepo) GetMonster(key string) (*game.Monster, error) {
	if mo, ok := m.monsters[key]; ok {
		return mo, nil
	}
	return nil, nil
}

func (m *mockRepo) GetSkill(key string) (*game.Skill, error) {
	if s, ok := m.skills[key]; ok {
		return s, nil
	}
	return nil, nil
}

func (m *mockRepo) GetAction(key string) (*game.TrainingAction, error) {
	if a, ok := m.actions[key]; ok {
		return a, nil
	}
	return nil, nil
}

// scriptedRng returns queued float draws in order and zero for Intn, so
// damage variance and roll outcomes are exact in assertions.
type scriptedRng struct {
	floats []float64
	pos    int
}

func (s *scriptedRng) Float64() float64 {
	if s.pos >= len(s.floats) {
		return 0.5
	}
	v := s.floats[s.pos]
	s.pos++
	return v
}

func (s *scriptedRng) Intn(n int) int { return 0 }

func testCharacter(now time.Time) *game.Character {
	c := &game.Character{
		UUID:             "char-1",
		Name:             "Tester",
		Vitality:         5,
		Strength:         10,
		Speed:            5,
		Dexterity:        5,
		CurrentHP:        75,
		CurrentSP:        35,
		HPRegenPerMinute: 2,
		SPRegenPerMinute: 1,
		LastRegenAt:      now,
		Level:            1,
	}
	c.ID = 1
	return c
}
