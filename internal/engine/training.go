package engine

import (
	"errors"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/game"
	"github.com/lil-brisket/Alicard-sub001/internal/progression"
)

// ErrNotReady is returned by TriggerCompletion when the next completion is
// still in the future.
var ErrNotReady = errors.New("training completion is not ready")

// Abort reasons recorded on the final event of an aborted commitment.
const (
	AbortMissingInput = "missing_input"
	AbortExhausted    = "exhausted"
)

// TrainingState is the mutable resource view one catch-up run operates on.
// Completions are processed strictly in schedule order, each depending on
// the state left by the previous one, so a run can never be parallelized.
type TrainingState struct {
	SP    int
	Items map[string]int

	JobLevel int
	JobXP    int64
}

// CompletionEvent describes one processed completion (or the abort that
// ended the commitment) for the caller to persist and display.
type CompletionEvent struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Success     bool      `json:"success"`

	XPGained  int64 `json:"xp_gained"`
	LeveledUp bool  `json:"leveled_up"`

	ItemsUsed   map[string]int `json:"items_used,omitempty"`
	ItemsGained map[string]int `json:"items_gained,omitempty"`

	Aborted     bool   `json:"aborted,omitempty"`
	AbortReason string `json:"abort_reason,omitempty"`
}

// ObserveTraining catches up every completion due at or before now, bounded
// by maxIterations so a commitment that is years behind cannot stall the
// request. It mutates the commitment's schedule and the resource state in
// place and reports whether the commitment must be deleted. An abort is a
// normal terminal outcome, not an error: it is surfaced on the final event.
func ObserveTraining(rng Rng, now time.Time, t *game.Training, action game.TrainingAction, state *TrainingState, xpCurve float64, maxIterations int) (events []CompletionEvent, aborted bool) {
	if maxIterations < 1 {
		maxIterations = 1
	}
	for processed := 0; processed < maxIterations && !t.NextCompletionAt.After(now); processed++ {
		ev, stop := runCompletion(rng, t, action, state, xpCurve)
		events = append(events, ev)
		if stop {
			return events, true
		}
	}
	return events, false
}

// TriggerCompletion processes exactly one due completion. Unlike the
// observation path it rejects early calls with ErrNotReady.
func TriggerCompletion(rng Rng, now time.Time, t *game.Training, action game.TrainingAction, state *TrainingState, xpCurve float64) (CompletionEvent, bool, error) {
	if t.NextCompletionAt.After(now) {
		return CompletionEvent{}, false, ErrNotReady
	}
	ev, stop := runCompletion(rng, t, action, state, xpCurve)
	return ev, stop, nil
}

// runCompletion executes the shared per-completion logic. On a missing-input
// abort the schedule does not advance: the completion was never granted and
// the commitment is gone. Every other path advances NextCompletionAt by the
// action's time cost, chained from its previous value.
func runCompletion(rng Rng, t *game.Training, action game.TrainingAction, state *TrainingState, xpCurve float64) (CompletionEvent, bool) {
	ev := CompletionEvent{ScheduledAt: t.NextCompletionAt}

	success := action.SuccessRate >= 1.0 || rng.Float64() < action.SuccessRate
	if success {
		for _, in := range action.Inputs {
			if state.Items[in.ItemKey] < in.Quantity {
				// The action can no longer proceed; end the
				// commitment without consuming anything.
				ev.Aborted = true
				ev.AbortReason = AbortMissingInput
				return ev, true
			}
		}
		if action.StaminaCost > state.SP {
			ev.Aborted = true
			ev.AbortReason = AbortExhausted
			return ev, true
		}

		ev.Success = true
		if len(action.Inputs) > 0 {
			ev.ItemsUsed = make(map[string]int, len(action.Inputs))
			for _, in := range action.Inputs {
				state.Items[in.ItemKey] -= in.Quantity
				ev.ItemsUsed[in.ItemKey] += in.Quantity
			}
		}

		state.JobLevel, state.JobXP, ev.LeveledUp = progression.AddXP(state.JobLevel, state.JobXP, action.XPReward, xpCurve)
		ev.XPGained = action.XPReward

		for _, out := range action.Outputs {
			qty := rollQuantity(rng, out)
			if qty <= 0 {
				continue
			}
			if ev.ItemsGained == nil {
				ev.ItemsGained = make(map[string]int, len(action.Outputs))
			}
			state.Items[out.ItemKey] += qty
			ev.ItemsGained[out.ItemKey] += qty
		}

		if action.StaminaCost > 0 {
			state.SP -= action.StaminaCost
			if state.SP <= 0 {
				// Rewards for this completion stand, but there is no
				// stamina left to continue.
				state.SP = 0
				ev.Aborted = true
				ev.AbortReason = AbortExhausted
				advanceSchedule(t, action)
				return ev, true
			}
		}
	}

	advanceSchedule(t, action)
	return ev, false
}

func advanceSchedule(t *game.Training, action game.TrainingAction) {
	t.NextCompletionAt = t.NextCompletionAt.Add(time.Duration(action.TimeCostSeconds) * time.Second)
	t.CompletionsCount++
}

func rollQuantity(rng Rng, out game.ItemDrop) int {
	min, max := out.MinQuantity, out.MaxQuantity
	if max < min {
		max = min
	}
	if max == min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
