package game

import (
	"time"

	"gorm.io/gorm"
)

// Training is a character's committed repeatable action and its schedule.
// At most one exists per character (unique index). NextCompletionAt advances
// by exactly the action's time cost per processed completion, chained from
// the previous value rather than from the observation time, so completions
// stay evenly spaced in simulated time no matter how late they are observed.
type Training struct {
	gorm.Model
	CharacterID uint `json:"-" gorm:"uniqueIndex"`

	ActionKey        string    `json:"action_key" gorm:"size:64"`
	StartedAt        time.Time `json:"started_at"`
	NextCompletionAt time.Time `json:"next_completion_at"`
	CompletionsCount int       `json:"completions_count"`
}
