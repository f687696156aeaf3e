// SPDX-License-Identifier: MIT
// Package: neurograph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • source       = weights.NewLCG(weights.DefaultSeed)
//   • weight range = [core.DefaultWeightMin, core.DefaultWeightMax)
//   • activation   = strategy.Sigmoid{}
//   • learningRate = DefaultLearningRate

package builder

import (
	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/strategy"
	"github.com/katalvlaran/neurograph/weights"
)

// DefaultLearningRate is the learning rate given to Hidden and Output presets.
const DefaultLearningRate = 0.2

// builderConfig aggregates every knob used by Layered.
type builderConfig struct {
	source       core.WeightSource
	weightMin    float64
	weightMax    float64
	activation   core.Activation
	learningRate float64
}

// newBuilderConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		source:       weights.NewLCG(weights.DefaultSeed),
		weightMin:    core.DefaultWeightMin,
		weightMax:    core.DefaultWeightMax,
		activation:   strategy.Sigmoid{},
		learningRate: DefaultLearningRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// graphOptions translates the config into core.GraphOption values.
func (c builderConfig) graphOptions() []core.GraphOption {
	return []core.GraphOption{
		core.WithWeightSource(c.source),
		core.WithWeightRange(c.weightMin, c.weightMax),
	}
}
