// File: strategy.go
// Role: per-node pluggable behavior contracts.
//
// Implementations live in package strategy; the core only depends on the
// interfaces so custom behavior can be attached without touching the engine.
package core

// Activation squashes a weighted sum into a node value.
type Activation interface {
	// Activate maps the pre-activation sum x to the node value.
	Activate(x float64) float64
	// Derivative is expressed in terms of the activation output y.
	Derivative(y float64) float64
}

// Signal is one incoming contribution: the head node's value and the
// weight of the edge carrying it.
type Signal struct {
	Value  float64
	Weight float64
}

// ValueRule accumulates incoming signals into a node value.
type ValueRule interface {
	Value(in []Signal, act Activation) float64
}

// Share is one downstream error contribution seen from an upstream node:
// the weight of the edge into the downstream node, the sum of the upstream
// node's own incoming weights, and the downstream node's error.
type Share struct {
	Weight    float64
	WeightSum float64
	Error     float64
}

// ErrorRule seeds errors at output nodes and redistributes them upstream.
type ErrorRule interface {
	OutputError(target, actual float64) float64
	HiddenError(shares []Share) float64
}

// WeightRule computes the adjusted weight of one incoming edge.
type WeightRule interface {
	Update(weight, learningRate, err, headValue float64) float64
}

// WeightSource supplies the initial weight of each newly created edge.
// Weight must return a value in [min, max).
type WeightSource interface {
	Weight(min, max float64) float64
}
