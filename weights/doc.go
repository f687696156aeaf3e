// Package weights provides sources of initial edge weights.
//
// A source exposes a single operation, Weight(min, max), returning a value
// in [min, max). The graph calls it exactly once per newly created edge, so
// two graphs built in the same order from equally seeded sources receive
// identical weights.
//
// Sources:
//
//	LCG       – linear congruential generator, deterministic per seed
//	Uniform   – math/rand backed, continuous uniform on [min, max)
//	Constant  – fixed value regardless of range (hand-checked scenarios)
//
// Sources are stateful and not safe for concurrent use.
package weights
