// Package core defines the central Graph, Node and Edge types together with
// the strategy interfaces each node can be configured with.
//
// This file declares Role, Capability, Node, Edge, Graph, GraphOption,
// NodeOption, the sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/neurograph/weights"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNoIncoming indicates the destination node has no incoming-edge list.
	ErrNoIncoming = errors.New("core: node does not accept incoming edges")

	// ErrNoOutgoing indicates the destination node has no outgoing-edge list.
	ErrNoOutgoing = errors.New("core: node does not accept outgoing edges")

	// ErrLoopNotAllowed indicates a connection from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Default range of freshly drawn edge weights.
const (
	DefaultWeightMin = 0.0
	DefaultWeightMax = 1.0
)

// Role tags a node with the part it plays in the network.
type Role int

const (
	Unknown Role = iota - 1 // Unknown: not assigned.
	Input                   // Input: value supplied externally, fans out only.
	Hidden                  // Hidden: interior node.
	Output                  // Output: value read back, error seeded from targets.
)

// String renders the role name.
func (r Role) String() string {
	switch r {
	case Input:
		return "Input"
	case Hidden:
		return "Hidden"
	case Output:
		return "Output"
	default:
		return "Unknown"
	}
}

// ParseRole is the inverse of Role.String (case-sensitive lower or title case).
func ParseRole(s string) (Role, error) {
	switch s {
	case "input", "Input":
		return Input, nil
	case "hidden", "Hidden":
		return Hidden, nil
	case "output", "Output":
		return Output, nil
	case "unknown", "Unknown":
		return Unknown, nil
	}

	return Unknown, fmt.Errorf("core: unknown role %q", s)
}

// Capability is a bitset of optional node features.
type Capability uint8

const (
	// CapIncoming: the node owns an incoming-edge list and may receive connections.
	CapIncoming Capability = 1 << iota
	// CapOutgoing: the node owns an outgoing-edge list and may fan out.
	CapOutgoing
	// CapTarget: the node carries a target value.
	CapTarget
	// CapLearningRate: the node carries a learning rate and participates in weight updates.
	CapLearningRate
)

// Has reports whether every bit of c is set.
func (caps Capability) Has(c Capability) bool { return caps&c == c }

// EdgeID addresses an edge inside its Graph's edge catalog.
type EdgeID int

// Edge is a weighted directed connection. Head is the node whose value (or
// error) feeds the edge; Tail is the recipient.
type Edge struct {
	// Weight is the connection strength, rewritten by weight-update passes.
	Weight float64

	head int
	tail int
}

// Head returns the id of the source-of-value node.
func (e *Edge) Head() int { return e.head }

// Tail returns the id of the recipient node.
func (e *Edge) Tail() int { return e.tail }

// String renders the edge as "head->tail (weight)".
func (e *Edge) String() string {
	return fmt.Sprintf("%d->%d (%g)", e.head, e.tail, e.Weight)
}

// Node is a neuron. Value and Error are overwritten by every pass; the
// strategies are optional and a nil strategy makes the matching pass skip
// the node.
type Node struct {
	Value float64
	Error float64

	Activation Activation
	ValueRule  ValueRule
	ErrorRule  ErrorRule
	WeightRule WeightRule

	role         Role
	caps         Capability
	target       float64
	learningRate float64

	incoming []EdgeID
	outgoing []EdgeID
}

// NodeOption configures a Node at construction.
type NodeOption func(*Node)

// WithIncoming gives the node an incoming-edge list.
func WithIncoming() NodeOption {
	return func(n *Node) { n.caps |= CapIncoming }
}

// WithOutgoing gives the node an outgoing-edge list.
func WithOutgoing() NodeOption {
	return func(n *Node) { n.caps |= CapOutgoing }
}

// WithTarget presets the node's target value.
func WithTarget(target float64) NodeOption {
	return func(n *Node) { n.SetTarget(target) }
}

// WithLearningRate presets the node's learning rate.
func WithLearningRate(rate float64) NodeOption {
	return func(n *Node) { n.SetLearningRate(rate) }
}

// WithActivation sets the activation strategy.
func WithActivation(a Activation) NodeOption {
	return func(n *Node) { n.Activation = a }
}

// WithValueRule sets the value-accumulation strategy.
func WithValueRule(r ValueRule) NodeOption {
	return func(n *Node) { n.ValueRule = r }
}

// WithErrorRule sets the error-accumulation strategy.
func WithErrorRule(r ErrorRule) NodeOption {
	return func(n *Node) { n.ErrorRule = r }
}

// WithWeightRule sets the weight-update strategy.
func WithWeightRule(r WeightRule) NodeOption {
	return func(n *Node) { n.WeightRule = r }
}

// NewNode allocates a node with the given role; the role is fixed for the
// node's lifetime.
func NewNode(role Role, opts ...NodeOption) *Node {
	n := &Node{role: role}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithWeightSource sets the source of initial edge weights.
// Panics on nil.
func WithWeightSource(src WeightSource) GraphOption {
	if src == nil {
		panic("core: WithWeightSource(nil)")
	}
	return func(g *Graph) { g.source = src }
}

// WithWeightRange sets the [min, max) range initial weights are drawn from.
// Panics if max < min.
func WithWeightRange(min, max float64) GraphOption {
	if max < min {
		panic(fmt.Sprintf("core: WithWeightRange requires min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(g *Graph) { g.weightMin, g.weightMax = min, max }
}

// Graph owns every node and edge of a network.
//
// nodes maps id → node; edges is the edge arena indexed by EdgeID and
// byPair resolves a (head, tail) pair to its EdgeID. inputs and outputs
// hold the ids registered with those roles.
type Graph struct {
	source    WeightSource
	weightMin float64
	weightMax float64

	nodes   map[int]*Node
	edges   []*Edge
	byPair  map[edgeKey]EdgeID
	inputs  map[int]struct{}
	outputs map[int]struct{}
}

type edgeKey struct{ head, tail int }

// NewGraph creates an empty Graph. Without options, weights are drawn from
// a deterministic LCG source seeded with weights.DefaultSeed in [0, 1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		source:    weights.NewLCG(weights.DefaultSeed),
		weightMin: DefaultWeightMin,
		weightMax: DefaultWeightMax,
		nodes:     make(map[int]*Node),
		byPair:    make(map[edgeKey]EdgeID),
		inputs:    make(map[int]struct{}),
		outputs:   make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
