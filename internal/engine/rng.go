package engine

import "math/rand"

// Rng is the random source the engine draws from. *math/rand.Rand satisfies
// it; tests pass a seeded instance for deterministic rolls.
type Rng interface {
	Float64() float64
	Intn(n int) int
}

type globalRng struct{}

func (globalRng) Float64() float64 { return rand.Float64() }
func (globalRng) Intn(n int) int   { return rand.Intn(n) }

// DefaultRng is safe for concurrent use; it delegates to the top-level
// math/rand functions.
var DefaultRng Rng = globalRng{}
