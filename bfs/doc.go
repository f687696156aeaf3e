// Package bfs provides the frontier-by-frontier walk that drives every
// propagation pass over a core.Graph.
//
// A walk starts from a seed frontier and processes it as one layer. The
// visit callback decides, per node, whether the node's neighbors join the
// next frontier; a node that opts out (missing strategy, missing edge list,
// terminal role) is processed but not expanded. The next frontier is
// de-duplicated and keeps first-discovery order. The walk ends when a
// frontier comes back empty.
//
// Unlike a classic BFS, nodes are not marked visited across layers: a node
// reachable through paths of different lengths is processed once per
// length, which is what layer-independent propagation needs. On a cyclic
// graph the walk would not terminate, so callers either check for cycles
// first or bound the walk with WithMaxDepth.
//
// Options:
//
//	WithContext(ctx)   – cancellation, checked once per layer
//	WithMaxDepth(d)    – fail with ErrDepthExceeded past d layers
//	WithOnLayer(fn)    – observe each frontier before it is processed
package bfs
