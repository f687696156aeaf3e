// File: methods_edges.go
// Role: Edge creation, lookup and neighbor enumeration.
//
// Edge identity:
//   - One record per (head, tail) pair, stored once in the edge arena.
//   - The incoming list of the tail and the outgoing list of the head hold
//     the same EdgeID, so a weight update is seen from both sides.
//   - A weight is drawn from the WeightSource only when a record is created.
//
// Determinism:
//   - EdgeIDs are assigned in creation order; node lists keep insertion order.
package core

import "fmt"

// Direction selects which side of an edge a traversal follows.
type Direction int

const (
	// Forward follows outgoing edges from head to tail.
	Forward Direction = iota
	// Backward follows incoming edges from tail to head.
	Backward
)

// String renders the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// ConnectHead records the edge src→dst in dst's incoming list.
//
// Implementation:
//   - Stage 1: Resolve both ids (ErrNodeNotFound) and reject src == dst.
//   - Stage 2: Require dst to own an incoming list (ErrNoIncoming).
//   - Stage 3: Find or create the (src, dst) record and append its id to
//     dst's incoming list unless already present.
//
// Errors:
//   - ErrNodeNotFound, ErrLoopNotAllowed, ErrNoIncoming.
//
// Complexity:
//   - Time O(deg(dst)), Space O(1) amortized.
func (g *Graph) ConnectHead(src, dst int) error {
	_, dn, err := g.resolvePair(src, dst)
	if err != nil {
		return err
	}
	if !dn.AcceptsIncoming() {
		return fmt.Errorf("%w: node %d", ErrNoIncoming, dst)
	}

	id := g.edgeFor(src, dst)
	if !dn.hasIncoming(id) {
		dn.incoming = append(dn.incoming, id)
	}

	return nil
}

// ConnectTail records the edge dst→src in dst's outgoing list.
//
// The orientation is swapped relative to ConnectHead: the stored edge has
// head = dst and tail = src. ConnectHead(a, b) together with
// ConnectTail(b, a) wires both sides of the single edge a→b.
//
// Errors:
//   - ErrNodeNotFound, ErrLoopNotAllowed, ErrNoOutgoing.
//
// Complexity:
//   - Time O(deg(dst)), Space O(1) amortized.
func (g *Graph) ConnectTail(src, dst int) error {
	_, dn, err := g.resolvePair(src, dst)
	if err != nil {
		return err
	}
	if !dn.AcceptsOutgoing() {
		return fmt.Errorf("%w: node %d", ErrNoOutgoing, dst)
	}

	id := g.edgeFor(dst, src)
	if !dn.hasOutgoing(id) {
		dn.outgoing = append(dn.outgoing, id)
	}

	return nil
}

// Connect wires both sides of src→dst: ConnectHead(src, dst) then
// ConnectTail(dst, src). Both sides are validated before either is written.
func (g *Graph) Connect(src, dst int) error {
	sn, dn, err := g.resolvePair(src, dst)
	if err != nil {
		return err
	}
	if !dn.AcceptsIncoming() {
		return fmt.Errorf("%w: node %d", ErrNoIncoming, dst)
	}
	if !sn.AcceptsOutgoing() {
		return fmt.Errorf("%w: node %d", ErrNoOutgoing, src)
	}
	if err = g.ConnectHead(src, dst); err != nil {
		return err
	}

	return g.ConnectTail(dst, src)
}

// Edge returns the edge record for id.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return nil, false
	}

	return g.edges[id], true
}

// EdgeBetween returns the record of head→tail, if one was created.
func (g *Graph) EdgeBetween(head, tail int) (*Edge, bool) {
	id, ok := g.byPair[edgeKey{head: head, tail: tail}]
	if !ok {
		return nil, false
	}

	return g.edges[id], true
}

// EdgeCount returns the number of distinct edge records.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Weights returns a snapshot of every edge weight indexed by EdgeID.
func (g *Graph) Weights() []float64 {
	out := make([]float64, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Weight
	}

	return out
}

// Neighbors returns the ids reachable from id in one step: tails of its
// outgoing edges (Forward) or heads of its incoming edges (Backward), in
// list order. A node without the matching list has no neighbors.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
func (g *Graph) Neighbors(id int, dir Direction) ([]int, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	var (
		list []EdgeID
		out  []int
	)
	if dir == Backward {
		list = n.incoming
	} else {
		list = n.outgoing
	}
	out = make([]int, 0, len(list))
	for _, eid := range list {
		e := g.edges[eid]
		if dir == Backward {
			out = append(out, e.head)
		} else {
			out = append(out, e.tail)
		}
	}

	return out, nil
}

// resolvePair looks up both endpoints and rejects self-loops.
func (g *Graph) resolvePair(src, dst int) (*Node, *Node, error) {
	sn, ok := g.nodes[src]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotFound, src)
	}
	dn, ok := g.nodes[dst]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotFound, dst)
	}
	if src == dst {
		return nil, nil, fmt.Errorf("%w: %d", ErrLoopNotAllowed, src)
	}

	return sn, dn, nil
}

// edgeFor returns the id of head→tail, creating the record on first use.
func (g *Graph) edgeFor(head, tail int) EdgeID {
	key := edgeKey{head: head, tail: tail}
	if id, ok := g.byPair[key]; ok {
		return id
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge{
		Weight: g.source.Weight(g.weightMin, g.weightMax),
		head:   head,
		tail:   tail,
	})
	g.byPair[key] = id

	return id
}
