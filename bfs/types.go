// Package bfs provides tunable options and error definitions for frontier
// walks over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/neurograph/core"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVisitNil is returned if a nil visit callback is passed.
	ErrVisitNil = errors.New("bfs: visit callback is nil")

	// ErrDepthExceeded is returned when a walk needs more layers than MaxDepth.
	ErrDepthExceeded = errors.New("bfs: depth limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// VisitFunc processes one node of the current frontier. Returning
// expand=false keeps its neighbors out of the next frontier; a non-nil
// error aborts the walk.
type VisitFunc func(id int, n *core.Node) (expand bool, err error)

// Option configures walk behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Walk is invoked.
type Option func(*WalkOptions)

// WalkOptions holds parameters and callbacks to customize a walk.
type WalkOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, is the maximum number of layers processed.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnLayer is called with each frontier before its nodes are visited.
	// Returning an error aborts the walk.
	OnLayer func(depth int, ids []int) error

	err error
}

// DefaultOptions returns WalkOptions with a background context, no depth
// limit and a no-op OnLayer hook.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnLayer:  func(int, []int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the number of layers.
//
//	d > 0: limit to d layers
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnLayer registers a per-layer observer.
func WithOnLayer(fn func(depth int, ids []int) error) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WalkResult holds the outcome of a walk:
//   - Order: node ids in visit sequence (repeats allowed across layers).
//   - Layers: number of frontiers processed.
type WalkResult struct {
	Order  []int
	Layers int
}
