// Package dfs implements pre-flight cycle detection for core.Graph networks.
//
// A layer walk over a cyclic graph never empties its frontier, so training
// and prediction refuse to start when a cycle is reachable. Detection runs
// an iterative depth-first search with three-color marking:
//
//	White – not visited yet
//	Gray  – on the current DFS path
//	Black – fully explored
//
// Meeting a Gray node closes a cycle. Two directions are checked:
//
//	Forward  – roots are the Input nodes; edges are followed head→tail
//	           through outgoing lists.
//	Backward – roots are the Output nodes; edges are followed tail→head
//	           through incoming lists.
//
// The two directions see different edges when a connection was wired on
// one side only, so both are needed before training.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (explicit stack + color map)
package dfs
