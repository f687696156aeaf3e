package network

import (
	"errors"

	"github.com/katalvlaran/neurograph/core"
)

// Sentinel errors for training and inference.
var (
	ErrGraphNil      = errors.New("network: graph is nil")
	ErrEmptyGraph    = errors.New("network: graph is empty")
	ErrShapeMismatch = errors.New("network: shape mismatch")
	ErrInvalidEpochs = errors.New("network: epochs must be ≥ 1")
	ErrCycleDetected = errors.New("network: cycle detected")
	ErrNodeMissing   = errors.New("network: node missing during propagation")
	ErrHookAborted   = errors.New("network: aborted by hook")
)

// Option configures a Network.
type Option func(*Network)

// WithOnEpoch registers fn to run after every completed epoch (0-based).
// A non-nil error stops Fit.
func WithOnEpoch(fn func(epoch int) error) Option {
	return func(n *Network) {
		if fn != nil {
			n.onEpoch = fn
		}
	}
}

// WithOnExample registers fn to run after every trained example.
// A non-nil error stops Fit.
func WithOnExample(fn func(epoch, index int) error) Option {
	return func(n *Network) {
		if fn != nil {
			n.onExample = fn
		}
	}
}

// Network drives propagation over a graph it does not own exclusively:
// callers may keep configuring the graph between calls.
type Network struct {
	g         *core.Graph
	onEpoch   func(epoch int) error
	onExample func(epoch, index int) error
}

// New wraps g. A nil g is accepted; every operation then fails with ErrGraphNil.
func New(g *core.Graph, opts ...Option) *Network {
	n := &Network{
		g:         g,
		onEpoch:   func(int) error { return nil },
		onExample: func(int, int) error { return nil },
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Graph returns the wrapped graph.
func (n *Network) Graph() *core.Graph { return n.g }
