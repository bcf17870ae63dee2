package game

// Content templates are authored in the server configuration file and held
// in memory; the configuration is the source of truth and nothing here is
// persisted. Templates are immutable once referenced by a battle or a
// training commitment.

// Monster is the base stat block for one monster type. Per-encounter stats
// are scaled from these by the spawn level.
type Monster struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	Strength int `json:"strength"`
	Speed    int `json:"speed"`
	Defense  int `json:"defense"`
	MaxHP    int `json:"max_hp"`

	XPReward   int64 `json:"xp_reward"`
	GoldReward int64 `json:"gold_reward"`
}

// Skill is a combat skill usable during a battle turn. Power multiplies the
// attacker's strength before the standard damage formula.
type Skill struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	SPCost int     `json:"sp_cost"`
	Power  float64 `json:"power"`
}

// ItemStack is a required input for one training completion.
type ItemStack struct {
	ItemKey  string `json:"item_key"`
	Quantity int    `json:"quantity"`
}

// ItemDrop is one output of a successful training completion; the granted
// quantity is rolled uniformly in [MinQuantity, MaxQuantity]. Zero is a
// valid roll and grants nothing.
type ItemDrop struct {
	ItemKey     string `json:"item_key"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}

// TrainingAction is the template for a repeatable idle activity.
type TrainingAction struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	// JobKey names the progression track XP is granted toward.
	JobKey string `json:"job_key"`

	TimeCostSeconds int `json:"time_cost_seconds"`
	// SuccessRate is in (0,1]; 1.0 always succeeds.
	SuccessRate   float64 `json:"success_rate"`
	StaminaCost   int     `json:"stamina_cost"`
	RequiredLevel int     `json:"required_level"`
	XPReward      int64   `json:"xp_reward"`

	Inputs  []ItemStack `json:"inputs"`
	Outputs []ItemDrop  `json:"outputs"`
}
