// Package engine contains the deterministic simulation core: the
// regeneration clock, combat turn resolution and idle-training catch-up.
// Everything here is a pure function over an explicit snapshot, the caller's
// clock and an injected random source; there is no internal mutable state,
// no I/O and no locking. Callers are expected to hold single-writer access
// to the character they pass in (one row per player at the persistence
// layer) and to persist whatever the engine returns.
package engine
