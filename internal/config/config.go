package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
	"github.com/lil-brisket/Alicard-sub001/internal/keys"
)

type monsterEntry struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Strength   int    `json:"strength"`
	Speed      int    `json:"speed"`
	Defense    int    `json:"defense"`
	MaxHP      int    `json:"max_hp"`
	XPReward   int64  `json:"xp_reward"`
	GoldReward int64  `json:"gold_reward"`
}

type skillEntry struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	SPCost int     `json:"sp_cost"`
	Power  float64 `json:"power"`
}

type actionEntry struct {
	Key             string           `json:"key"`
	Name            string           `json:"name"`
	JobKey          string           `json:"job_key"`
	TimeCostSeconds int              `json:"time_cost_seconds"`
	SuccessRate     float64          `json:"success_rate"`
	StaminaCost     int              `json:"stamina_cost"`
	RequiredLevel   int              `json:"required_level"`
	XPReward        int64            `json:"xp_reward"`
	Inputs          []game.ItemStack `json:"inputs"`
	Outputs         []game.ItemDrop  `json:"outputs"`
}

type rawConfig struct {
	MonsterList []monsterEntry `json:"monster_list"`
	ActionList  []actionEntry  `json:"action_list"`
	SkillList   []skillEntry   `json:"skill_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
	Engine *struct {
		// MaxCatchupIterations bounds training catch-up per observation.
		MaxCatchupIterations int     `json:"max_catchup_iterations"`
		XPCurve              float64 `json:"xp_curve"`
		// BattleIdleTimeoutMinutes is the wall-clock policy for expiring
		// abandoned battles; it is applied outside the engine.
		BattleIdleTimeoutMinutes int     `json:"battle_idle_timeout_minutes"`
		RespawnHPFraction        float64 `json:"respawn_hp_fraction"`
		RespawnSPFraction        float64 `json:"respawn_sp_fraction"`
	} `json:"engine"`
	Starting *struct {
		Vitality         int     `json:"vitality"`
		Strength         int     `json:"strength"`
		Speed            int     `json:"speed"`
		Dexterity        int     `json:"dexterity"`
		HPRegenPerMinute float64 `json:"hp_regen_per_minute"`
		SPRegenPerMinute float64 `json:"sp_regen_per_minute"`
	} `json:"starting"`
}

// StartingCharacter is the attribute block new characters are created with.
type StartingCharacter struct {
	Vitality         int
	Strength         int
	Speed            int
	Dexterity        int
	HPRegenPerMinute float64
	SPRegenPerMinute float64
}

// EngineTuning groups the simulation knobs loaded from config; the catch-up
// ceiling lives here rather than as a literal in the engine.
type EngineTuning struct {
	MaxCatchupIterations int
	XPCurve              float64
	BattleIdleTimeout    time.Duration
	RespawnHPFraction    float64
	RespawnSPFraction    float64
}

// LoadedConfig contains the content tables to serve and the server tuning.
type LoadedConfig struct {
	Monsters []game.Monster
	Actions  []game.TrainingAction
	Skills   []game.Skill

	ServerAddress string
	Engine        EngineTuning
	Starting      StartingCharacter
}

// LoadConfig reads the configuration file at path. It requires non-empty
// `monster_list` and `action_list` tables; keys default to the canonical
// form of the entry name when omitted.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.MonsterList) == 0 {
		return nil, fmt.Errorf("config file %s: monster_list is empty", path)
	}
	if len(rc.ActionList) == 0 {
		return nil, fmt.Errorf("config file %s: action_list is empty", path)
	}

	out := &LoadedConfig{
		ServerAddress: ":8080",
		Engine: EngineTuning{
			MaxCatchupIterations: 1000,
			XPCurve:              1.5,
			BattleIdleTimeout:    30 * time.Minute,
			RespawnHPFraction:    0.5,
			RespawnSPFraction:    0.5,
		},
		Starting: StartingCharacter{
			Vitality:         5,
			Strength:         5,
			Speed:            5,
			Dexterity:        5,
			HPRegenPerMinute: 2,
			SPRegenPerMinute: 1,
		},
	}

	for _, m := range rc.MonsterList {
		if m.Name == "" {
			return nil, fmt.Errorf("config file %s: monster entry missing 'name'", path)
		}
		if m.MaxHP <= 0 {
			return nil, fmt.Errorf("config file %s: monster %q needs max_hp > 0", path, m.Name)
		}
		key := m.Key
		if key == "" {
			key = keys.ContentKey(m.Name)
		}
		out.Monsters = append(out.Monsters, game.Monster{
			Key:        key,
			Name:       m.Name,
			Strength:   m.Strength,
			Speed:      m.Speed,
			Defense:    m.Defense,
			MaxHP:      m.MaxHP,
			XPReward:   m.XPReward,
			GoldReward: m.GoldReward,
		})
	}

	for _, a := range rc.ActionList {
		if a.Name == "" {
			return nil, fmt.Errorf("config file %s: action entry missing 'name'", path)
		}
		if a.TimeCostSeconds <= 0 {
			return nil, fmt.Errorf("config file %s: action %q needs time_cost_seconds > 0", path, a.Name)
		}
		if a.SuccessRate <= 0 || a.SuccessRate > 1 {
			return nil, fmt.Errorf("config file %s: action %q needs success_rate in (0,1]", path, a.Name)
		}
		key := a.Key
		if key == "" {
			key = keys.ContentKey(a.Name)
		}
		jobKey := a.JobKey
		if jobKey == "" {
			jobKey = key
		}
		out.Actions = append(out.Actions, game.TrainingAction{
			Key:             key,
			Name:            a.Name,
			JobKey:          jobKey,
			TimeCostSeconds: a.TimeCostSeconds,
			SuccessRate:     a.SuccessRate,
			StaminaCost:     a.StaminaCost,
			RequiredLevel:   a.RequiredLevel,
			XPReward:        a.XPReward,
			Inputs:          a.Inputs,
			Outputs:         a.Outputs,
		})
	}

	for _, s := range rc.SkillList {
		if s.Name == "" {
			return nil, fmt.Errorf("config file %s: skill entry missing 'name'", path)
		}
		if s.Power <= 0 {
			return nil, fmt.Errorf("config file %s: skill %q needs power > 0", path, s.Name)
		}
		key := s.Key
		if key == "" {
			key = keys.ContentKey(s.Name)
		}
		out.Skills = append(out.Skills, game.Skill{Key: key, Name: s.Name, SPCost: s.SPCost, Power: s.Power})
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Engine != nil {
		if rc.Engine.MaxCatchupIterations > 0 {
			out.Engine.MaxCatchupIterations = rc.Engine.MaxCatchupIterations
		}
		if rc.Engine.XPCurve > 0 {
			out.Engine.XPCurve = rc.Engine.XPCurve
		}
		if rc.Engine.BattleIdleTimeoutMinutes > 0 {
			out.Engine.BattleIdleTimeout = time.Duration(rc.Engine.BattleIdleTimeoutMinutes) * time.Minute
		}
		if rc.Engine.RespawnHPFraction > 0 {
			out.Engine.RespawnHPFraction = rc.Engine.RespawnHPFraction
		}
		if rc.Engine.RespawnSPFraction > 0 {
			out.Engine.RespawnSPFraction = rc.Engine.RespawnSPFraction
		}
	}
	if rc.Starting != nil {
		out.Starting = StartingCharacter{
			Vitality:         rc.Starting.Vitality,
			Strength:         rc.Starting.Strength,
			Speed:            rc.Starting.Speed,
			Dexterity:        rc.Starting.Dexterity,
			HPRegenPerMinute: rc.Starting.HPRegenPerMinute,
			SPRegenPerMinute: rc.Starting.SPRegenPerMinute,
		}
	}
	return out, nil
}
