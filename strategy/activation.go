package strategy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/neurograph/core"
)

// ErrUnknownActivation is returned by Activation for an unregistered name.
var ErrUnknownActivation = errors.New("strategy: unknown activation")

// DefaultStepThreshold is the threshold of the "step" registry entry.
const DefaultStepThreshold = 0.5

// Sigmoid is the logistic function.
type Sigmoid struct{}

// Activate returns 1/(1+e^−x).
func (Sigmoid) Activate(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Derivative returns y(1−y) for the output y.
func (Sigmoid) Derivative(y float64) float64 { return y * (1 - y) }

// Tanh is the hyperbolic tangent.
type Tanh struct{}

// Activate returns tanh(x).
func (Tanh) Activate(x float64) float64 { return math.Tanh(x) }

// Derivative returns 1−y² for the output y.
func (Tanh) Derivative(y float64) float64 { return 1 - y*y }

// Linear is the identity with unit slope.
type Linear struct{}

// Activate returns x unchanged.
func (Linear) Activate(x float64) float64 { return x }

// Derivative is always 1.
func (Linear) Derivative(_ float64) float64 { return 1 }

// Passthrough forwards its input and echoes the output as its derivative.
// It marks nodes that relay values without shaping them.
type Passthrough struct{}

// Activate returns x unchanged.
func (Passthrough) Activate(x float64) float64 { return x }

// Derivative echoes the output y.
func (Passthrough) Derivative(y float64) float64 { return y }

// Step fires 1 once the input reaches Threshold.
type Step struct {
	Threshold float64
}

// Activate returns 1 when x ≥ Threshold and 0 otherwise.
func (s Step) Activate(x float64) float64 {
	if x >= s.Threshold {
		return 1
	}

	return 0
}

// Derivative is 1 for a non-negative output and 0 below it.
func (Step) Derivative(y float64) float64 {
	if y < 0 {
		return 0
	}

	return 1
}

// ReLU is the rectified linear unit.
type ReLU struct{}

// Activate returns max(0, x).
func (ReLU) Activate(x float64) float64 { return math.Max(0, x) }

// Derivative is 1 for a positive output and 0 otherwise.
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}

	return 0
}

var registry = map[string]core.Activation{
	"sigmoid":     Sigmoid{},
	"tanh":        Tanh{},
	"linear":      Linear{},
	"passthrough": Passthrough{},
	"step":        Step{Threshold: DefaultStepThreshold},
	"relu":        ReLU{},
}

// Activation resolves a registry name, case-insensitively.
func Activation(name string) (core.Activation, error) {
	act, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownActivation, name, strings.Join(Names(), ", "))
	}

	return act, nil
}

// Names lists the registry keys in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
