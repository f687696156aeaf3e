package dfs

import (
	"fmt"

	"github.com/katalvlaran/neurograph/core"
)

// FindCycle returns the first cycle reachable from the roots of dir as a
// closed path [v0, v1, ..., v0], or nil when none exists.
//
// Roots are visited in ascending id order and neighbors in edge-list order,
// so the reported cycle is deterministic.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrNodeNotFound (wrapped) when a root or neighbor id is missing.
func FindCycle(g *core.Graph, dir core.Direction) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var roots []int
	if dir == core.Backward {
		roots = g.OutputIDs()
	} else {
		roots = g.InputIDs()
	}

	state := make(map[int]VertexState, g.Size())
	for _, root := range roots {
		if state[root] != White {
			continue
		}
		cycle, err := visit(g, root, dir, state)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle(%s): %w", dir, err)
		}
		if cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// HasCycle reports whether FindCycle finds a cycle.
func HasCycle(g *core.Graph, dir core.Direction) (bool, error) {
	cycle, err := FindCycle(g, dir)

	return cycle != nil, err
}

// HasCycleForward is HasCycle(g, core.Forward).
func HasCycleForward(g *core.Graph) (bool, error) { return HasCycle(g, core.Forward) }

// HasCycleBackward is HasCycle(g, core.Backward).
func HasCycleBackward(g *core.Graph) (bool, error) { return HasCycle(g, core.Backward) }

// visit runs one iterative DFS from root. The explicit stack doubles as the
// Gray path used to reconstruct a cycle.
func visit(g *core.Graph, root int, dir core.Direction, state map[int]VertexState) ([]int, error) {
	nbrs, err := g.Neighbors(root, dir)
	if err != nil {
		return nil, err
	}
	stack := []frame{{id: root, nbrs: nbrs}}
	state[root] = Gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++

		switch state[nbr] {
		case White:
			if nbrs, err = g.Neighbors(nbr, dir); err != nil {
				return nil, err
			}
			state[nbr] = Gray
			stack = append(stack, frame{id: nbr, nbrs: nbrs})
		case Gray:
			return closeCycle(stack, nbr), nil
		}
	}

	return nil, nil
}

// closeCycle extracts the path segment starting at start and closes it.
func closeCycle(stack []frame, start int) []int {
	idx := 0
	for i := range stack {
		if stack[i].id == start {
			idx = i
			break
		}
	}

	cycle := make([]int, 0, len(stack)-idx+1)
	for _, f := range stack[idx:] {
		cycle = append(cycle, f.id)
	}

	return append(cycle, start)
}
