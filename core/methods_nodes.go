// File: methods_nodes.go
// Role: Node catalog lifecycle & queries.
//
// Determinism:
//   - NodeIDs(), InputIDs() and OutputIDs() return ids sorted ascending.
package core

import "sort"

// AddNode stores n under id.
//
// Implementation:
//   - Stage 1: Ignore a nil node (configuration no-op).
//   - Stage 2: Insert or overwrite the catalog entry.
//   - Stage 3: Register id in the Input or Output role set when applicable.
//
// Notes:
//   - Overwriting an id with a node of a different role does not remove the
//     id from the previous role set; use a fresh id when the role changes.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id int, n *Node) {
	if n == nil {
		return
	}

	g.nodes[id] = n
	switch n.role {
	case Input:
		g.inputs[id] = struct{}{}
	case Output:
		g.outputs[id] = struct{}{}
	}
}

// Node returns the node stored under id; ok is false when absent.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return len(g.nodes) }

// NodeIDs returns every node id in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// InputIDs returns the ids registered as Input, ascending. Input vectors
// are matched against nodes in this order.
func (g *Graph) InputIDs() []int { return sortedSet(g.inputs) }

// OutputIDs returns the ids registered as Output, ascending. Target and
// prediction vectors are matched against nodes in this order.
func (g *Graph) OutputIDs() []int { return sortedSet(g.outputs) }

func sortedSet(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
