// File: methods_map.go
// Role: bulk configuration of activations and learning rates.
//
// Depth semantics:
//   - Depth 0 is the Input set (ascending ids).
//   - Depth d+1 is every tail reached through the outgoing lists of depth d.
//   - A node is matched whenever some path of length d reaches it; nodes at
//     the requested depth are not expanded further.
//
// Nil activations and empty depths are configuration no-ops.
package core

// MapActivation replaces the activation of every node that already has one.
// A nil act is ignored.
func (g *Graph) MapActivation(act Activation) {
	if act == nil {
		return
	}
	for _, n := range g.nodes {
		if n.Activation != nil {
			n.Activation = act
		}
	}
}

// MapActivationAt assigns act to every node at the given depth, whether or
// not it had an activation before. A nil act or an empty depth is ignored.
func (g *Graph) MapActivationAt(act Activation, depth int) {
	if act == nil {
		return
	}
	for _, id := range g.NodesAtDepth(depth) {
		g.nodes[id].Activation = act
	}
}

// MapLearningRate replaces the learning rate of every node that already has one.
func (g *Graph) MapLearningRate(rate float64) {
	for _, n := range g.nodes {
		if n.caps.Has(CapLearningRate) {
			n.learningRate = rate
		}
	}
}

// MapLearningRateAt assigns rate to every node at the given depth.
func (g *Graph) MapLearningRateAt(rate float64, depth int) {
	for _, id := range g.NodesAtDepth(depth) {
		g.nodes[id].SetLearningRate(rate)
	}
}

// NodesAtDepth returns the ids found at depth, in discovery order.
//
// Implementation:
//   - Stage 1: Seed the current frontier with InputIDs().
//   - Stage 2: Swap frontiers depth times, following outgoing edges.
//   - Stage 3: Return the last frontier; an exhausted walk yields nil.
//
// Edges pointing at missing nodes are skipped. The walk is bounded by
// depth, so it terminates on cyclic graphs too.
//
// Complexity:
//   - Time O(depth · E) worst case, Space O(V).
func (g *Graph) NodesAtDepth(depth int) []int {
	if depth < 0 {
		return nil
	}

	cur := NewFrontier(len(g.inputs))
	for _, id := range g.InputIDs() {
		cur.Add(id)
	}
	next := NewFrontier(len(g.nodes))

	for i := 0; i < depth && cur.Len() > 0; i++ {
		next.Reset()
		for _, id := range cur.IDs() {
			n, ok := g.nodes[id]
			if !ok {
				continue
			}
			for _, eid := range n.outgoing {
				tail := g.edges[eid].tail
				if _, ok = g.nodes[tail]; ok {
					next.Add(tail)
				}
			}
		}
		cur, next = next, cur
	}
	if cur.Len() == 0 {
		return nil
	}

	return append([]int(nil), cur.IDs()...)
}
