// Package dfs defines the visitation colors and sentinel errors used by
// cycle detection.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a node.
type VertexState int

const (
	White VertexState = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id   int
	nbrs []int
	next int
}
