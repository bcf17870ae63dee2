package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent catch-up work. Training catch-up processes completions against
// the resource state left by the previous one, so two simultaneous reads for
// the same character must collapse into a single run: the second caller
// waits for and shares the first caller's result.

import "golang.org/x/sync/singleflight"

// TrainingGroup deduplicates training catch-up runs keyed by character UUID.
var TrainingGroup singleflight.Group
