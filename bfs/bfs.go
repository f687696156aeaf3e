package bfs

import (
	"fmt"

	"github.com/katalvlaran/neurograph/core"
)

// walker encapsulates mutable walk state.
type walker struct {
	graph *core.Graph
	dir   core.Direction
	visit VisitFunc
	opts  WalkOptions
	cur   *core.Frontier
	next  *core.Frontier
	res   *WalkResult
}

// Walk processes seeds as the first frontier and then follows dir
// (Forward: outgoing edges to tails, Backward: incoming edges to heads)
// from every node whose visit returned expand=true.
//
// Returns ErrGraphNil, ErrVisitNil or ErrOptionViolation for invalid input,
// core.ErrNodeNotFound (wrapped) for an id that does not resolve,
// ErrDepthExceeded when MaxDepth is hit, ctx.Err() on cancellation, or the
// first error returned by visit or OnLayer.
func Walk(g *core.Graph, seeds []int, dir core.Direction, visit VisitFunc, opts ...Option) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if visit == nil {
		return nil, ErrVisitNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Size()
	w := &walker{
		graph: g,
		dir:   dir,
		visit: visit,
		opts:  o,
		cur:   core.NewFrontier(len(seeds)),
		next:  core.NewFrontier(n),
		res:   &WalkResult{Order: make([]int, 0, n)},
	}
	for _, id := range seeds {
		w.cur.Add(id)
	}

	return w.res, w.loop()
}

// loop processes frontiers until one is empty, an error occurs, or the
// context is cancelled.
func (w *walker) loop() error {
	for depth := 0; w.cur.Len() > 0; depth++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return fmt.Errorf("%w: %d layers", ErrDepthExceeded, w.opts.MaxDepth)
		}
		if err := w.opts.OnLayer(depth, w.cur.IDs()); err != nil {
			return fmt.Errorf("bfs: OnLayer error at depth %d: %w", depth, err)
		}

		w.next.Reset()
		for _, id := range w.cur.IDs() {
			if err := w.step(id); err != nil {
				return err
			}
		}
		w.cur, w.next = w.next, w.cur
		w.res.Layers++
	}

	return nil
}

// step visits one node and, when asked to, queues its neighbors.
func (w *walker) step(id int) error {
	node, ok := w.graph.Node(id)
	if !ok {
		return fmt.Errorf("bfs: %w: %d", core.ErrNodeNotFound, id)
	}
	w.res.Order = append(w.res.Order, id)

	expand, err := w.visit(id, node)
	if err != nil {
		return err
	}
	if !expand {
		return nil
	}

	nbrs, err := w.graph.Neighbors(id, w.dir)
	if err != nil {
		return fmt.Errorf("bfs: %w", err)
	}
	for _, nbr := range nbrs {
		w.next.Add(nbr)
	}

	return nil
}
