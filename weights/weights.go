// SPDX-License-Identifier: MIT
package weights

import (
	"fmt"
	"math/rand"
)

// LCG parameters (Numerical Recipes multiplier and increment, Mersenne modulus).
const (
	lcgMultiplier uint64 = 1664525
	lcgIncrement  uint64 = 1013904223
	lcgModulus    uint64 = 2147483647 // 2^31 - 1
)

// DefaultSeed seeds the LCG used when no weight source is configured.
const DefaultSeed uint64 = 1

// LCG is a fast linear congruential weight source.
// Each call advances seed ← (a·seed + c) mod m and scales seed/m into [min, max).
type LCG struct {
	seed uint64
}

// NewLCG returns an LCG positioned at seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{seed: seed % lcgModulus}
}

// Weight draws the next value in [min, max).
// Complexity: O(1).
func (l *LCG) Weight(min, max float64) float64 {
	l.seed = (lcgMultiplier*l.seed + lcgIncrement) % lcgModulus

	return float64(l.seed)/float64(lcgModulus)*(max-min) + min
}

// Uniform samples uniformly from a *rand.Rand.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform wraps rng. Panics on nil.
func NewUniform(rng *rand.Rand) *Uniform {
	if rng == nil {
		panic("weights: NewUniform(nil)")
	}

	return &Uniform{rng: rng}
}

// NewSeededUniform is NewUniform(rand.New(rand.NewSource(seed))).
func NewSeededUniform(seed int64) *Uniform {
	return NewUniform(rand.New(rand.NewSource(seed)))
}

// Weight draws a value in [min, max); a degenerate interval yields min.
func (u *Uniform) Weight(min, max float64) float64 {
	if max == min {
		return min
	}

	return min + u.rng.Float64()*(max-min)
}

// Constant always yields its own value and ignores the requested range.
type Constant float64

// Weight returns c.
func (c Constant) Weight(_, _ float64) float64 { return float64(c) }

// String renders the constant for logs.
func (c Constant) String() string { return fmt.Sprintf("constant(%g)", float64(c)) }
