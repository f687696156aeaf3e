package core_test

import (
	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/weights"
)

// identity is a minimal Activation for structural tests.
type identity struct{ tag string }

func (identity) Activate(x float64) float64   { return x }
func (identity) Derivative(_ float64) float64 { return 1 }

func inputNode() *core.Node { return core.NewNode(core.Input, core.WithOutgoing()) }

func hiddenNode() *core.Node {
	return core.NewNode(core.Hidden,
		core.WithIncoming(), core.WithOutgoing(),
		core.WithActivation(identity{"hidden"}), core.WithLearningRate(0.2))
}

func outputNode() *core.Node {
	return core.NewNode(core.Output,
		core.WithIncoming(),
		core.WithActivation(identity{"output"}), core.WithLearningRate(0.2))
}

// chain builds 0(in) -> 1(hidden) -> 2(out) with constant weights.
func chain() *core.Graph {
	g := core.NewGraph(core.WithWeightSource(weights.Constant(1)))
	g.AddNode(0, inputNode())
	g.AddNode(1, hiddenNode())
	g.AddNode(2, outputNode())
	_ = g.Connect(0, 1)
	_ = g.Connect(1, 2)

	return g
}
