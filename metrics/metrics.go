// Package metrics scores predictions against targets.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrShapeMismatch indicates predictions and targets differ in shape.
var ErrShapeMismatch = errors.New("metrics: shape mismatch")

// Report summarizes one evaluation.
type Report struct {
	MSE      float64 // mean squared error over every output value
	Accuracy float64 // fraction of rows whose rounded outputs all equal the targets
	Rows     int
}

// String renders the report for logs and demos.
func (r Report) String() string {
	return fmt.Sprintf("rows=%d mse=%.6f accuracy=%.2f", r.Rows, r.MSE, r.Accuracy)
}

// MeanSquaredError averages (p−t)² over every value of every row.
// Empty input yields 0.
func MeanSquaredError(pred, targets [][]float64) (float64, error) {
	p, t, err := flatten(pred, targets)
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	diff := make([]float64, len(p))
	floats.SubTo(diff, p, t)
	floats.Mul(diff, diff)

	return stat.Mean(diff, nil), nil
}

// Accuracy returns the fraction of rows where every prediction rounds to
// its target. Empty input yields 0.
func Accuracy(pred, targets [][]float64) (float64, error) {
	if _, _, err := flatten(pred, targets); err != nil {
		return 0, err
	}
	if len(pred) == 0 {
		return 0, nil
	}

	hits := make([]float64, len(pred))
	for i := range pred {
		hits[i] = 1
		for j := range pred[i] {
			if math.Round(pred[i][j]) != targets[i][j] {
				hits[i] = 0
				break
			}
		}
	}

	return stat.Mean(hits, nil), nil
}

// Evaluate computes both metrics.
func Evaluate(pred, targets [][]float64) (Report, error) {
	mse, err := MeanSquaredError(pred, targets)
	if err != nil {
		return Report{}, err
	}
	acc, err := Accuracy(pred, targets)
	if err != nil {
		return Report{}, err
	}

	return Report{MSE: mse, Accuracy: acc, Rows: len(pred)}, nil
}

func flatten(pred, targets [][]float64) ([]float64, []float64, error) {
	if len(pred) != len(targets) {
		return nil, nil, fmt.Errorf("%w: %d predictions vs %d targets", ErrShapeMismatch, len(pred), len(targets))
	}

	var p, t []float64
	for i := range pred {
		if len(pred[i]) != len(targets[i]) {
			return nil, nil, fmt.Errorf("%w: row %d has %d values vs %d", ErrShapeMismatch, i, len(pred[i]), len(targets[i]))
		}
		p = append(p, pred[i]...)
		t = append(t, targets[i]...)
	}

	return p, t, nil
}
