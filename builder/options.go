// SPDX-License-Identifier: MIT
// Package: neurograph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Layered itself never panics.
//   • Determinism is explicit: the default weight source is a seeded LCG.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/weights"
)

// BuilderOption customizes Layered by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed draws initial weights from a math/rand source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.source = weights.NewSeededUniform(seed)
	}
}

// WithRand draws initial weights from r. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.source = weights.NewUniform(r)
	}
}

// WithWeightSource sets an arbitrary weight source. Panics on nil.
func WithWeightSource(src core.WeightSource) BuilderOption {
	if src == nil {
		panic("builder: WithWeightSource(nil)")
	}
	return func(c *builderConfig) {
		c.source = src
	}
}

// WithWeightRange sets the [min, max) range of initial weights.
// Panics if max < min or either bound is not finite.
func WithWeightRange(min, max float64) BuilderOption {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("builder: WithWeightRange requires finite min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(c *builderConfig) {
		c.weightMin, c.weightMax = min, max
	}
}

// WithActivation sets the activation of Hidden and Output nodes. Panics on nil.
func WithActivation(act core.Activation) BuilderOption {
	if act == nil {
		panic("builder: WithActivation(nil)")
	}
	return func(c *builderConfig) {
		c.activation = act
	}
}

// WithLearningRate sets the learning rate of Hidden and Output nodes.
// Panics on a negative or non-finite rate.
func WithLearningRate(rate float64) BuilderOption {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		panic(fmt.Sprintf("builder: WithLearningRate requires a finite rate ≥ 0, got %g", rate))
	}
	return func(c *builderConfig) {
		c.learningRate = rate
	}
}
