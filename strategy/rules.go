package strategy

import "github.com/katalvlaran/neurograph/core"

// WeightedSum computes act(Σ value·weight) over the incoming signals.
// No signals or a nil activation yield 0.
type WeightedSum struct{}

// Value returns act(Σ value·weight), or 0 for no signals or a nil act.
func (WeightedSum) Value(in []core.Signal, act core.Activation) float64 {
	if len(in) == 0 || act == nil {
		return 0
	}

	var total float64
	for _, s := range in {
		total += s.Value * s.Weight
	}

	return act.Activate(total)
}

// ProportionalError seeds output errors as target − actual and hands each
// upstream node the share weight/weightSum of every downstream error.
// A share with a zero weight sum contributes nothing.
type ProportionalError struct{}

// OutputError returns target − actual.
func (ProportionalError) OutputError(target, actual float64) float64 { return target - actual }

// HiddenError returns Σ weight/weightSum·error over shares, skipping
// shares whose weight sum is zero.
func (ProportionalError) HiddenError(shares []core.Share) float64 {
	var total float64
	for _, s := range shares {
		if s.WeightSum == 0 {
			continue
		}
		total += s.Weight / s.WeightSum * s.Error
	}

	return total
}

// DeltaRule steps a weight by −rate·err·headValue.
type DeltaRule struct{}

// Update returns weight − learningRate·err·headValue.
func (DeltaRule) Update(weight, learningRate, err, headValue float64) float64 {
	return weight - learningRate*err*headValue
}

// Compile-time interface checks.
var (
	_ core.ValueRule  = WeightedSum{}
	_ core.ErrorRule  = ProportionalError{}
	_ core.WeightRule = DeltaRule{}
	_ core.Activation = Sigmoid{}
	_ core.Activation = Step{}
)
