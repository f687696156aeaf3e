package network

import (
	"fmt"

	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/dfs"
)

// Fit trains the graph for epochs passes over (inputs, targets).
//
// Implementation:
//   - Stage 1: Validate graph, example counts, epochs, row widths and
//     acyclicity; nothing is mutated if any check fails.
//   - Stage 2: For every epoch and every example in order, run
//     ForwardPropagate, BackwardPropagateError and BackwardPropagateWeights.
//   - Stage 3: Stop at the first failing pass or hook.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrShapeMismatch, ErrInvalidEpochs,
//     ErrCycleDetected (in that order of precedence), then ErrNodeMissing
//     or ErrHookAborted from the training loop.
func (n *Network) Fit(inputs, targets [][]float64, epochs int) error {
	if n.g == nil {
		return ErrGraphNil
	}
	if n.g.Size() == 0 {
		return ErrEmptyGraph
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs vs %d targets", ErrShapeMismatch, len(inputs), len(targets))
	}
	if epochs < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidEpochs, epochs)
	}
	if err := checkWidths("input", inputs, len(n.g.InputIDs())); err != nil {
		return err
	}
	if err := checkWidths("target", targets, len(n.g.OutputIDs())); err != nil {
		return err
	}
	if err := n.checkCycles(true); err != nil {
		return err
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for i := range inputs {
			if err := n.ForwardPropagate(inputs[i]); err != nil {
				return fmt.Errorf("network: epoch %d example %d: %w", epoch, i, err)
			}
			if err := n.BackwardPropagateError(targets[i]); err != nil {
				return fmt.Errorf("network: epoch %d example %d: %w", epoch, i, err)
			}
			if err := n.BackwardPropagateWeights(); err != nil {
				return fmt.Errorf("network: epoch %d example %d: %w", epoch, i, err)
			}
			if err := n.onExample(epoch, i); err != nil {
				return fmt.Errorf("%w: epoch %d example %d: %w", ErrHookAborted, epoch, i, err)
			}
		}
		if err := n.onEpoch(epoch); err != nil {
			return fmt.Errorf("%w: epoch %d: %w", ErrHookAborted, epoch, err)
		}
	}

	return nil
}

// Predict runs ForwardPropagate for every row and collects output values
// in OutputIDs order, one result row per input row.
//
// Errors:
//   - ErrGraphNil, ErrShapeMismatch, ErrCycleDetected before any mutation.
//   - ErrNodeMissing if an output node cannot be resolved.
func (n *Network) Predict(inputs [][]float64) ([][]float64, error) {
	if n.g == nil {
		return nil, ErrGraphNil
	}
	if err := checkWidths("input", inputs, len(n.g.InputIDs())); err != nil {
		return nil, err
	}
	if err := n.checkCycles(false); err != nil {
		return nil, err
	}

	outputs := n.g.OutputIDs()
	result := make([][]float64, 0, len(inputs))
	for i, x := range inputs {
		if err := n.ForwardPropagate(x); err != nil {
			return nil, fmt.Errorf("network: example %d: %w", i, err)
		}
		row := make([]float64, 0, len(outputs))
		for _, id := range outputs {
			node, ok := n.g.Node(id)
			if !ok {
				return nil, missing(id)
			}
			row = append(row, node.Value)
		}
		result = append(result, row)
	}

	return result, nil
}

// HasCycleForward reports whether a cycle is reachable from the inputs.
func (n *Network) HasCycleForward() (bool, error) {
	if n.g == nil {
		return false, ErrGraphNil
	}

	return dfs.HasCycleForward(n.g)
}

// HasCycleBackward reports whether a cycle is reachable from the outputs.
func (n *Network) HasCycleBackward() (bool, error) {
	if n.g == nil {
		return false, ErrGraphNil
	}

	return dfs.HasCycleBackward(n.g)
}

// checkCycles runs the forward check and, when training, the backward one.
func (n *Network) checkCycles(backward bool) error {
	cycle, err := dfs.FindCycle(n.g, core.Forward)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNodeMissing, err)
	}
	if cycle != nil {
		return fmt.Errorf("%w: forward %v", ErrCycleDetected, cycle)
	}
	if !backward {
		return nil
	}

	cycle, err = dfs.FindCycle(n.g, core.Backward)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNodeMissing, err)
	}
	if cycle != nil {
		return fmt.Errorf("%w: backward %v", ErrCycleDetected, cycle)
	}

	return nil
}

func checkWidths(kind string, rows [][]float64, want int) error {
	for i, row := range rows {
		if len(row) != want {
			return fmt.Errorf("%w: %s row %d has width %d, want %d", ErrShapeMismatch, kind, i, len(row), want)
		}
	}

	return nil
}
