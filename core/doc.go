// Package core provides the node/edge data model and the graph container of
// a feed-forward network whose topology is not restricted to strict
// layer-to-layer wiring.
//
// The Graph G = (V,E) is an arena:
//
//   - Nodes are addressed by caller-chosen integer ids (map id → *Node).
//   - Edges live once in an edge catalog addressed by EdgeID; each node keeps
//     ordered lists of EdgeIDs for its incoming (head) and outgoing (tail) side.
//   - An edge is identified by its (head, tail) pair. Re-adding the same pair
//     updates the existing record in place, it never duplicates it.
//   - Input and Output ids are tracked in role sets and enumerated in
//     ascending id order, so every traversal is deterministic.
//
// Per-node behavior is pluggable through four small interfaces:
//
//	Activation  – squashing function applied to the weighted sum
//	ValueRule   – how incoming signals are accumulated into a value
//	ErrorRule   – how errors are seeded at outputs and redistributed upstream
//	WeightRule  – how an incoming edge weight is adjusted
//
// A nil strategy, a missing edge list, or a missing learning rate is not an
// error: it is how a node opts out of a particular pass while staying
// structurally connected. Capability checks are exposed as CanForward,
// CanPropagateError and CanUpdateWeights.
//
// Core Methods:
//
//	// Nodes
//	NewNode(role Role, opts ...NodeOption) *Node
//	AddNode(id int, n *Node)                 // nil → no-op
//	Node(id int) (*Node, bool)               // never errors
//	Size() int
//	NodeIDs() / InputIDs() / OutputIDs() []int // ascending ids
//
//	// Edges
//	ConnectHead(src, dst int) error          // edge src→dst in dst's incoming list
//	ConnectTail(src, dst int) error          // edge dst→src in dst's outgoing list
//	Connect(src, dst int) error              // both sides of src→dst
//	Edge(id EdgeID) (*Edge, bool)
//	EdgeBetween(head, tail int) (*Edge, bool)
//
//	// Bulk configuration
//	MapActivation(fn) / MapActivationAt(fn, depth)
//	MapLearningRate(rate) / MapLearningRateAt(rate, depth)
//	NodesAtDepth(depth int) []int
//
// Errors:
//
//	ErrNodeNotFound    – an id does not resolve to a node
//	ErrNoIncoming      – destination node cannot receive connections
//	ErrNoOutgoing      – destination node cannot fan out
//	ErrLoopNotAllowed  – source and destination are the same node
//
// A Graph is not safe for concurrent use; training runs single-threaded and
// every operation completes before returning.
package core
