package service

import "errors"

// Sentinel errors reported synchronously to callers. None are retried
// internally; retry policy, if any, belongs to the caller.
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrMonsterNotFound   = errors.New("monster not found")
	ErrActionNotFound    = errors.New("training action not found")
	ErrSkillNotFound     = errors.New("skill not found")

	ErrBattleNotFound = errors.New("no battle in progress")
	ErrBattleActive   = errors.New("a battle is already in progress")
	ErrBattleFinished = errors.New("battle is already finished")
	ErrNotEnoughSP    = errors.New("not enough SP")

	ErrTrainingNotFound = errors.New("no training in progress")
	ErrTrainingActive   = errors.New("a training action is already in progress")
	ErrTrainingNotReady = errors.New("training completion is not ready")
	ErrJobLevelTooLow   = errors.New("job level too low for this action")
)
