package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/config"
	"github.com/lil-brisket/Alicard-sub001/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB

	monstersByKey map[string]game.Monster
	actionsByKey  map[string]game.TrainingAction
	skillsByKey   map[string]game.Skill

	monsters []game.Monster
	actions  []game.TrainingAction
	skills   []game.Skill
}

// NewSQLiteRepository builds a repository over the given database, with
// content lookup maps built from the loaded config.
func NewSQLiteRepository(db *gorm.DB, cfg *config.LoadedConfig) Repository {
	r := &sqliteRepository{
		db:            db,
		monstersByKey: make(map[string]game.Monster, len(cfg.Monsters)),
		actionsByKey:  make(map[string]game.TrainingAction, len(cfg.Actions)),
		skillsByKey:   make(map[string]game.Skill, len(cfg.Skills)),
		monsters:      cfg.Monsters,
		actions:       cfg.Actions,
		skills:        cfg.Skills,
	}
	for _, m := range cfg.Monsters {
		r.monstersByKey[m.Key] = m
	}
	for _, a := range cfg.Actions {
		r.actionsByKey[a.Key] = a
	}
	for _, s := range cfg.Skills {
		r.skillsByKey[s.Key] = s
	}
	return r
}

func (r *sqliteRepository) CreateCharacter(c *game.Character) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetCharacterByUUID(uuid string) (*game.Character, error) {
	var c game.Character
	err := r.db.Preload("Equipment").Preload("Items").Preload("Jobs").
		Where("uuid = ?", uuid).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetCharacterByID(id uint) (*game.Character, error) {
	var c game.Character
	err := r.db.Preload("Equipment").Preload("Items").Preload("Jobs").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) UpdateCharacter(c *game.Character) error {
	return r.db.Save(c).Error
}

func (r *sqliteRepository) GetJob(characterID uint, jobKey string) (*game.Job, error) {
	var j game.Job
	err := r.db.Where("character_id = ? AND job_key = ?", characterID, jobKey).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *sqliteRepository) GetBattle(characterID uint) (*game.Battle, error) {
	var b game.Battle
	err := r.db.Where("character_id = ?", characterID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) DeleteBattle(b *game.Battle) error {
	return r.db.Unscoped().Delete(b).Error
}

func (r *sqliteRepository) SaveBattleTurn(c *game.Character, b *game.Battle) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		return tx.Save(c).Error
	})
}

func (r *sqliteRepository) FindIdleBattles(cutoff time.Time) ([]game.Battle, error) {
	var battles []game.Battle
	err := r.db.Where("status = ? AND last_action_at <= ?", game.BattleStatusActive, cutoff).Find(&battles).Error
	return battles, err
}

func (r *sqliteRepository) GetTraining(characterID uint) (*game.Training, error) {
	var t game.Training
	err := r.db.Where("character_id = ?", characterID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *sqliteRepository) CreateTraining(t *game.Training) error {
	return r.db.Create(t).Error
}

func (r *sqliteRepository) DeleteTraining(t *game.Training) error {
	return r.db.Unscoped().Delete(t).Error
}

func (r *sqliteRepository) ApplyTrainingOutcome(c *game.Character, t *game.Training, deleted bool, job *game.Job, itemDeltas map[string]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&game.Character{}).Where("id = ?", c.ID).
			Updates(map[string]interface{}{
				"current_hp":    c.CurrentHP,
				"current_sp":    c.CurrentSP,
				"last_regen_at": c.LastRegenAt,
			}).Error; err != nil {
			return err
		}
		if job != nil {
			if err := tx.Save(job).Error; err != nil {
				return err
			}
		}
		for key, delta := range itemDeltas {
			if delta == 0 {
				continue
			}
			if err := adjustInventory(tx, c.ID, key, delta); err != nil {
				return err
			}
		}
		if deleted {
			return tx.Unscoped().Delete(t).Error
		}
		return tx.Save(t).Error
	})
}

// adjustInventory applies one stack delta, creating the row on first gain
// and refusing to drive a stack negative.
func adjustInventory(tx *gorm.DB, characterID uint, itemKey string, delta int) error {
	var item game.InventoryItem
	err := tx.Where("character_id = ? AND item_key = ?", characterID, itemKey).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if delta < 0 {
			return fmt.Errorf("inventory underflow for item %s", itemKey)
		}
		item = game.InventoryItem{CharacterID: characterID, ItemKey: itemKey, Quantity: delta}
		return tx.Create(&item).Error
	}
	if err != nil {
		return err
	}
	item.Quantity += delta
	if item.Quantity < 0 {
		return fmt.Errorf("inventory underflow for item %s", itemKey)
	}
	return tx.Save(&item).Error
}

func (r *sqliteRepository) TopKillers(limit int) ([]game.Character, error) {
	if limit <= 0 {
		limit = 10
	}
	var chars []game.Character
	err := r.db.Order("kills DESC, name ASC").Limit(limit).Find(&chars).Error
	return chars, err
}

func (r *sqliteRepository) GetMonster(key string) (*game.Monster, error) {
	if m, ok := r.monstersByKey[key]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *sqliteRepository) GetAction(key string) (*game.TrainingAction, error) {
	if a, ok := r.actionsByKey[key]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *sqliteRepository) GetSkill(key string) (*game.Skill, error) {
	if s, ok := r.skillsByKey[key]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *sqliteRepository) ListMonsters() []game.Monster        { return r.monsters }
func (r *sqliteRepository) ListActions() []game.TrainingAction  { return r.actions }
func (r *sqliteRepository) ListSkills() []game.Skill            { return r.skills }
