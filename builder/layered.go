// SPDX-License-Identifier: MIT
// Package: neurograph/builder
//
// layered.go: dense layer-to-layer construction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/neurograph/core"
)

// Layered builds a graph with one layer per non-zero entry of sizes.
//
// Implementation:
//   - Stage 1: Reject negative sizes (ErrBadSize) before allocating anything.
//   - Stage 2: Drop zero sizes; create nodes with ascending ids, assigning
//     Input to the first remaining layer, Output to the last, Hidden otherwise.
//   - Stage 3: Connect every node of each layer to every node of the next
//     one, in (source id, destination id) order so weight draws are stable.
//
// Returns:
//   - *core.Graph: possibly empty when every size is zero.
//   - error: ErrBadSize, or ErrConstructFailed wrapping a core error.
//
// Complexity:
//   - Time O(V + Σ n_i·n_{i+1}), Space O(V + E).
func Layered(sizes []int, opts ...BuilderOption) (*core.Graph, error) {
	for i, n := range sizes {
		if n < 0 {
			return nil, builderErrorf(MethodLayered, ErrBadSize, "layer %d has size %d", i, n)
		}
	}

	cfg := newBuilderConfig(opts...)
	g := core.NewGraph(cfg.graphOptions()...)

	layers := make([][]int, 0, len(sizes))
	for _, n := range sizes {
		if n > 0 {
			layers = append(layers, make([]int, n))
		}
	}

	id := 0
	for li := range layers {
		role := layerRole(li, len(layers))
		for j := range layers[li] {
			g.AddNode(id, cfg.node(role))
			layers[li][j] = id
			id++
		}
	}

	for li := 0; li+1 < len(layers); li++ {
		for _, src := range layers[li] {
			for _, dst := range layers[li+1] {
				if err := g.Connect(src, dst); err != nil {
					return nil, fmt.Errorf("%s: %w: connect %d->%d: %w", MethodLayered, ErrConstructFailed, src, dst, err)
				}
			}
		}
	}

	return g, nil
}

// layerRole maps a non-empty layer index to its role.
func layerRole(index, count int) core.Role {
	switch {
	case index == 0:
		return core.Input
	case index == count-1:
		return core.Output
	default:
		return core.Hidden
	}
}

// node returns the preset for role with the configured activation and rate.
func (c builderConfig) node(role core.Role) *core.Node {
	if role == core.Input {
		return InputNode()
	}

	return NodeFor(role, core.WithActivation(c.activation), core.WithLearningRate(c.learningRate))
}
