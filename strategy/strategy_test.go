package strategy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/strategy"
)

// Derivatives are expressed in the output y; compare against a central
// finite difference of Activate taken at x.
func TestActivation_DerivativeMatchesFiniteDifference(t *testing.T) {
	cases := map[string]core.Activation{
		"sigmoid": strategy.Sigmoid{},
		"tanh":    strategy.Tanh{},
		"linear":  strategy.Linear{},
		"relu":    strategy.ReLU{},
	}
	points := []float64{-2, -0.5, 0.3, 1.7}

	for name, act := range cases {
		t.Run(name, func(t *testing.T) {
			for _, x := range points {
				want := fd.Derivative(act.Activate, x, &fd.Settings{Formula: fd.Central})
				got := act.Derivative(act.Activate(x))
				assert.InDelta(t, want, got, 1e-6, "x=%g", x)
			}
		})
	}
}

func TestSigmoid_Values(t *testing.T) {
	s := strategy.Sigmoid{}
	assert.Equal(t, 0.5, s.Activate(0))
	assert.InDelta(t, 1/(1+math.Exp(-2)), s.Activate(2), 1e-12)
	assert.Equal(t, 0.25, s.Derivative(0.5))
}

func TestPassthrough(t *testing.T) {
	p := strategy.Passthrough{}
	assert.Equal(t, -3.5, p.Activate(-3.5))
	assert.Equal(t, 0.4, p.Derivative(0.4))
}

func TestStep(t *testing.T) {
	s := strategy.Step{Threshold: 0.5}
	assert.Equal(t, 0.0, s.Activate(0.49))
	assert.Equal(t, 1.0, s.Activate(0.5))
	assert.Equal(t, 0.0, s.Derivative(-0.1))
	assert.Equal(t, 1.0, s.Derivative(0))
}

func TestActivation_Registry(t *testing.T) {
	for _, name := range strategy.Names() {
		act, err := strategy.Activation(name)
		require.NoError(t, err, name)
		require.NotNil(t, act, name)
	}

	act, err := strategy.Activation(" Sigmoid ")
	require.NoError(t, err)
	assert.Equal(t, strategy.Sigmoid{}, act)

	step, err := strategy.Activation("step")
	require.NoError(t, err)
	assert.Equal(t, strategy.Step{Threshold: strategy.DefaultStepThreshold}, step)

	_, err = strategy.Activation("softmax")
	assert.ErrorIs(t, err, strategy.ErrUnknownActivation)
}

func TestWeightedSum(t *testing.T) {
	r := strategy.WeightedSum{}
	in := []core.Signal{{Value: 1, Weight: 0.5}, {Value: 2, Weight: 0.25}}
	assert.Equal(t, 1.0, r.Value(in, strategy.Linear{}))
	assert.Equal(t, 0.0, r.Value(nil, strategy.Linear{}))
	assert.Equal(t, 0.0, r.Value(in, nil))
}

func TestProportionalError(t *testing.T) {
	r := strategy.ProportionalError{}
	assert.Equal(t, -2.0, r.OutputError(0, 2))

	shares := []core.Share{
		{Weight: 1, WeightSum: 4, Error: 8},  // 2
		{Weight: 3, WeightSum: 0, Error: 10}, // guarded
		{Weight: 2, WeightSum: 2, Error: -1}, // -1
	}
	assert.Equal(t, 1.0, r.HiddenError(shares))
	assert.Equal(t, 0.0, r.HiddenError(nil))
}

func TestDeltaRule(t *testing.T) {
	r := strategy.DeltaRule{}
	assert.Equal(t, 3.0, r.Update(1, 0.5, -2, 2))
	assert.Equal(t, 1.0, r.Update(1, 0, -2, 2), "zero rate is a no-op")
}
