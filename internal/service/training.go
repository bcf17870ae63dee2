package service

import (
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/config"
	"github.com/lil-brisket/Alicard-sub001/internal/engine"
	"github.com/lil-brisket/Alicard-sub001/internal/game"
)

// TrainingRepo is the minimal repository interface required by the training
// operations.
type TrainingRepo interface {
	CharacterRepo

	GetJob(characterID uint, jobKey string) (*game.Job, error)

	GetTraining(characterID uint) (*game.Training, error)
	CreateTraining(t *game.Training) error
	DeleteTraining(t *game.Training) error
	ApplyTrainingOutcome(c *game.Character, t *game.Training, deleted bool, job *game.Job, itemDeltas map[string]int) error

	GetAction(key string) (*game.TrainingAction, error)
}

// StartTraining commits the character to a repeatable action. The first
// completion is scheduled one full time cost after now; at most one
// commitment exists per character.
func StartTraining(repo TrainingRepo, charUUID, actionKey string, now time.Time) (*game.Training, error) {
	c, err := RefreshVitals(repo, charUUID, now)
	if err != nil {
		return nil, err
	}

	existing, err := repo.GetTraining(c.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTrainingActive
	}

	action, err := repo.GetAction(actionKey)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, ErrActionNotFound
	}

	job, err := repo.GetJob(c.ID, action.JobKey)
	if err != nil {
		return nil, err
	}
	level := 1
	if job != nil {
		level = job.Level
	}
	if level < action.RequiredLevel {
		return nil, ErrJobLevelTooLow
	}

	t := &game.Training{
		CharacterID:      c.ID,
		ActionKey:        action.Key,
		StartedAt:        now,
		NextCompletionAt: now.Add(time.Duration(action.TimeCostSeconds) * time.Second),
	}
	if err := repo.CreateTraining(t); err != nil {
		return nil, err
	}
	return t, nil
}

// StopTraining ends the commitment immediately. There is no partial
// completion to roll back; pending but unobserved completions are simply
// never processed.
func StopTraining(repo TrainingRepo, charUUID string, now time.Time) error {
	c, err := repo.GetCharacterByUUID(charUUID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCharacterNotFound
	}
	t, err := repo.GetTraining(c.ID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTrainingNotFound
	}
	return repo.DeleteTraining(t)
}

// ObserveTraining is the read-path catch-up: it processes every completion
// due since the last observation, bounded by the configured iteration
// ceiling. A nil commitment with nil events means the character is not
// training. An abort (insufficient inputs or stamina) is a normal outcome:
// the commitment comes back nil and the final event carries the abort flag.
func ObserveTraining(repo TrainingRepo, rng engine.Rng, charUUID string, now time.Time, tuning config.EngineTuning) (*game.Training, []engine.CompletionEvent, error) {
	c, err := RefreshVitals(repo, charUUID, now)
	if err != nil {
		return nil, nil, err
	}
	t, err := repo.GetTraining(c.ID)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, nil
	}

	action, job, state, err := loadTrainingState(repo, c, t)
	if err != nil {
		return nil, nil, err
	}

	before := copyItems(state.Items)
	events, aborted := engine.ObserveTraining(rng, now, t, *action, state, tuning.XPCurve, tuning.MaxCatchupIterations)
	if len(events) == 0 {
		return t, nil, nil
	}

	if err := persistTrainingState(repo, c, t, aborted, job, state, before); err != nil {
		return nil, nil, err
	}
	if aborted {
		return nil, events, nil
	}
	return t, events, nil
}

// CompleteTraining is the explicit trigger path: it processes exactly one
// due completion and rejects early calls with ErrTrainingNotReady.
func CompleteTraining(repo TrainingRepo, rng engine.Rng, charUUID string, now time.Time, tuning config.EngineTuning) (*engine.CompletionEvent, error) {
	c, err := RefreshVitals(repo, charUUID, now)
	if err != nil {
		return nil, err
	}
	t, err := repo.GetTraining(c.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTrainingNotFound
	}

	action, job, state, err := loadTrainingState(repo, c, t)
	if err != nil {
		return nil, err
	}

	before := copyItems(state.Items)
	ev, aborted, err := engine.TriggerCompletion(rng, now, t, *action, state, tuning.XPCurve)
	if err == engine.ErrNotReady {
		return nil, ErrTrainingNotReady
	}
	if err != nil {
		return nil, err
	}
	if err := persistTrainingState(repo, c, t, aborted, job, state, before); err != nil {
		return nil, err
	}
	return &ev, nil
}

// loadTrainingState resolves the commitment's action template and builds the
// mutable resource view one catch-up run operates on. A commitment whose
// action no longer exists in the content tables is cleaned up.
func loadTrainingState(repo TrainingRepo, c *game.Character, t *game.Training) (*game.TrainingAction, *game.Job, *engine.TrainingState, error) {
	action, err := repo.GetAction(t.ActionKey)
	if err != nil {
		return nil, nil, nil, err
	}
	if action == nil {
		_ = repo.DeleteTraining(t)
		return nil, nil, nil, ErrActionNotFound
	}

	job, err := repo.GetJob(c.ID, action.JobKey)
	if err != nil {
		return nil, nil, nil, err
	}
	if job == nil {
		job = &game.Job{CharacterID: c.ID, JobKey: action.JobKey, Level: 1}
	}

	items := make(map[string]int, len(c.Items))
	for _, it := range c.Items {
		items[it.ItemKey] = it.Quantity
	}
	state := &engine.TrainingState{
		SP:       c.CurrentSP,
		Items:    items,
		JobLevel: job.Level,
		JobXP:    job.XP,
	}
	return action, job, state, nil
}

// persistTrainingState writes one catch-up run back in a single transaction.
func persistTrainingState(repo TrainingRepo, c *game.Character, t *game.Training, aborted bool, job *game.Job, state *engine.TrainingState, before map[string]int) error {
	c.CurrentSP = state.SP
	job.Level = state.JobLevel
	job.XP = state.JobXP

	deltas := make(map[string]int)
	for key, qty := range state.Items {
		if d := qty - before[key]; d != 0 {
			deltas[key] = d
		}
	}
	for key, qty := range before {
		if _, ok := state.Items[key]; !ok && qty != 0 {
			deltas[key] = -qty
		}
	}
	return repo.ApplyTrainingOutcome(c, t, aborted, job, deltas)
}

func copyItems(items map[string]int) map[string]int {
	out := make(map[string]int, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}
