package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/neurograph/bfs"
	"github.com/katalvlaran/neurograph/core"
)

// ForwardPropagate seeds the inputs with x and computes every reachable
// node value frontier by frontier.
//
// Seed: input i (in InputIDs order) takes x[i]; tails of their outgoing
// edges form the first frontier. Step: a node that CanForward takes
// ValueRule(signals of its incoming edges, Activation); it passes control
// to its tails unless it is an Output or has no outgoing list.
//
// The walk is bounded by the graph size, so a cycle surfaces as
// ErrCycleDetected instead of looping.
func (n *Network) ForwardPropagate(x []float64) error {
	if n.g == nil {
		return ErrGraphNil
	}
	inputs := n.g.InputIDs()
	if len(x) != len(inputs) {
		return fmt.Errorf("%w: input width %d, want %d", ErrShapeMismatch, len(x), len(inputs))
	}

	var seeds []int
	for i, id := range inputs {
		node, ok := n.g.Node(id)
		if !ok {
			return missing(id)
		}
		node.Value = x[i]
		if !node.AcceptsOutgoing() {
			continue
		}
		tails, err := n.g.Neighbors(id, core.Forward)
		if err != nil {
			return missing(id)
		}
		seeds = append(seeds, tails...)
	}

	return n.walk(seeds, core.Forward, func(id int, node *core.Node) (bool, error) {
		if !node.CanForward() {
			return false, nil
		}
		in, err := n.signals(node)
		if err != nil {
			return false, err
		}
		node.Value = node.ValueRule.Value(in, node.Activation)

		return node.Role() != core.Output && node.AcceptsOutgoing(), nil
	})
}

// BackwardPropagateError seeds output errors from y and redistributes
// them toward the inputs.
//
// Seed: output i (in OutputIDs order) gets target y[i]; when it can seed an
// error it takes OutputError(y[i], value) and its heads form the first
// frontier. Step: a node that CanPropagateError collects one Share per
// outgoing edge (edge weight, its own incoming weight sum, the tail's
// error). Input nodes are terminal.
func (n *Network) BackwardPropagateError(y []float64) error {
	if n.g == nil {
		return ErrGraphNil
	}
	outputs := n.g.OutputIDs()
	if len(y) != len(outputs) {
		return fmt.Errorf("%w: target width %d, want %d", ErrShapeMismatch, len(y), len(outputs))
	}

	var seeds []int
	for i, id := range outputs {
		node, ok := n.g.Node(id)
		if !ok {
			return missing(id)
		}
		node.SetTarget(y[i])
		if !node.CanSeedError() {
			continue
		}
		node.Error = node.ErrorRule.OutputError(y[i], node.Value)
		heads, err := n.g.Neighbors(id, core.Backward)
		if err != nil {
			return missing(id)
		}
		seeds = append(seeds, heads...)
	}

	return n.walk(seeds, core.Backward, func(id int, node *core.Node) (bool, error) {
		if !node.CanPropagateError() {
			return false, nil
		}
		shares, err := n.shares(node)
		if err != nil {
			return false, err
		}
		node.Error = node.ErrorRule.HiddenError(shares)

		return node.Role() != core.Input, nil
	})
}

// BackwardPropagateWeights steps incoming weights from the outputs toward
// the inputs.
//
// Seed: every Output node that CanUpdateWeights updates its incoming edges
// and its heads form the first frontier. Step: the same update for every
// node that CanUpdateWeights. Input nodes are terminal.
func (n *Network) BackwardPropagateWeights() error {
	if n.g == nil {
		return ErrGraphNil
	}

	var seeds []int
	for _, id := range n.g.OutputIDs() {
		node, ok := n.g.Node(id)
		if !ok {
			return missing(id)
		}
		if node.Role() != core.Output || !node.CanUpdateWeights() {
			continue
		}
		if err := n.updateWeights(node); err != nil {
			return err
		}
		heads, err := n.g.Neighbors(id, core.Backward)
		if err != nil {
			return missing(id)
		}
		seeds = append(seeds, heads...)
	}

	return n.walk(seeds, core.Backward, func(id int, node *core.Node) (bool, error) {
		if !node.CanUpdateWeights() {
			return false, nil
		}
		if err := n.updateWeights(node); err != nil {
			return false, err
		}

		return node.Role() != core.Input, nil
	})
}

// walk runs a bounded frontier walk and maps walk failures onto the
// network taxonomy.
func (n *Network) walk(seeds []int, dir core.Direction, visit bfs.VisitFunc) error {
	if len(seeds) == 0 {
		return nil
	}
	_, err := bfs.Walk(n.g, seeds, dir, visit, bfs.WithMaxDepth(n.g.Size()+1))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bfs.ErrDepthExceeded):
		return fmt.Errorf("%w: %s walk did not settle: %w", ErrCycleDetected, dir, err)
	case errors.Is(err, core.ErrNodeNotFound) && !errors.Is(err, ErrNodeMissing):
		return fmt.Errorf("%w: %w", ErrNodeMissing, err)
	default:
		return err
	}
}

// signals gathers (head value, weight) for every incoming edge of node.
func (n *Network) signals(node *core.Node) ([]core.Signal, error) {
	ids := node.Incoming()
	in := make([]core.Signal, 0, len(ids))
	for _, eid := range ids {
		e, head, err := n.headOf(eid)
		if err != nil {
			return nil, err
		}
		in = append(in, core.Signal{Value: head.Value, Weight: e.Weight})
	}

	return in, nil
}

// shares gathers one Share per outgoing edge of node. Every share carries
// node's own incoming weight sum.
func (n *Network) shares(node *core.Node) ([]core.Share, error) {
	ids := node.Outgoing()
	sum := n.incomingSum(node)
	out := make([]core.Share, 0, len(ids))
	for _, eid := range ids {
		e, ok := n.g.Edge(eid)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d", ErrNodeMissing, eid)
		}
		tail, ok := n.g.Node(e.Tail())
		if !ok {
			return nil, missing(e.Tail())
		}
		out = append(out, core.Share{
			Weight:    e.Weight,
			WeightSum: sum,
			Error:     tail.Error,
		})
	}

	return out, nil
}

// updateWeights applies node's WeightRule to each incoming edge.
func (n *Network) updateWeights(node *core.Node) error {
	rate, _ := node.LearningRate()
	for _, eid := range node.Incoming() {
		e, head, err := n.headOf(eid)
		if err != nil {
			return err
		}
		e.Weight = node.WeightRule.Update(e.Weight, rate, node.Error, head.Value)
	}

	return nil
}

func (n *Network) incomingSum(node *core.Node) float64 {
	var sum float64
	for _, eid := range node.Incoming() {
		if e, ok := n.g.Edge(eid); ok {
			sum += e.Weight
		}
	}

	return sum
}

func (n *Network) headOf(eid core.EdgeID) (*core.Edge, *core.Node, error) {
	e, ok := n.g.Edge(eid)
	if !ok {
		return nil, nil, fmt.Errorf("%w: edge %d", ErrNodeMissing, eid)
	}
	head, ok := n.g.Node(e.Head())
	if !ok {
		return nil, nil, missing(e.Head())
	}

	return e, head, nil
}

func missing(id int) error {
	return fmt.Errorf("%w: %w: %d", ErrNodeMissing, core.ErrNodeNotFound, id)
}
