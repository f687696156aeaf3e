// File: node.go
// Role: Node accessors and per-pass capability checks.
//
// A node's edge lists are written only by Graph.ConnectHead/ConnectTail;
// the accessors below return copies so callers cannot break the
// incoming/outgoing consistency the traversals rely on.
package core

// Role returns the role fixed at construction.
func (n *Node) Role() Role { return n.role }

// Caps returns the node's capability bitset.
func (n *Node) Caps() Capability { return n.caps }

// Target returns the target value and whether one is set.
func (n *Node) Target() (float64, bool) {
	return n.target, n.caps.Has(CapTarget)
}

// SetTarget stores the target value.
func (n *Node) SetTarget(target float64) {
	n.target = target
	n.caps |= CapTarget
}

// LearningRate returns the learning rate and whether one is set.
// A node without a learning rate never has its incoming weights updated.
func (n *Node) LearningRate() (float64, bool) {
	return n.learningRate, n.caps.Has(CapLearningRate)
}

// SetLearningRate stores the learning rate.
func (n *Node) SetLearningRate(rate float64) {
	n.learningRate = rate
	n.caps |= CapLearningRate
}

// AcceptsIncoming reports whether the node owns an incoming-edge list.
func (n *Node) AcceptsIncoming() bool { return n.caps.Has(CapIncoming) }

// AcceptsOutgoing reports whether the node owns an outgoing-edge list.
func (n *Node) AcceptsOutgoing() bool { return n.caps.Has(CapOutgoing) }

// Incoming returns a copy of the incoming EdgeIDs in insertion order.
func (n *Node) Incoming() []EdgeID { return append([]EdgeID(nil), n.incoming...) }

// Outgoing returns a copy of the outgoing EdgeIDs in insertion order.
func (n *Node) Outgoing() []EdgeID { return append([]EdgeID(nil), n.outgoing...) }

// CanForward reports whether the forward pass computes this node's value:
// it needs a value rule, an incoming list and an activation.
func (n *Node) CanForward() bool {
	return n.ValueRule != nil && n.Activation != nil && n.AcceptsIncoming()
}

// CanPropagateError reports whether the backward error pass computes this
// node's error as an interior node: it needs both edge lists and an error rule.
func (n *Node) CanPropagateError() bool {
	return n.ErrorRule != nil && n.AcceptsIncoming() && n.AcceptsOutgoing()
}

// CanSeedError reports whether the node can take its error from a target.
func (n *Node) CanSeedError() bool {
	return n.role == Output && n.ErrorRule != nil && n.AcceptsIncoming()
}

// CanUpdateWeights reports whether the weight pass adjusts this node's
// incoming weights: it needs an incoming list, a learning rate and a weight rule.
func (n *Node) CanUpdateWeights() bool {
	return n.WeightRule != nil && n.AcceptsIncoming() && n.caps.Has(CapLearningRate)
}

// hasIncoming reports whether id is already in the incoming list.
func (n *Node) hasIncoming(id EdgeID) bool {
	for _, e := range n.incoming {
		if e == id {
			return true
		}
	}

	return false
}

// hasOutgoing reports whether id is already in the outgoing list.
func (n *Node) hasOutgoing(id EdgeID) bool {
	for _, e := range n.outgoing {
		if e == id {
			return true
		}
	}

	return false
}
