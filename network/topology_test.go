package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neurograph/builder"
	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/network"
	"github.com/katalvlaran/neurograph/strategy"
	"github.com/katalvlaran/neurograph/weights"
)

// Incoming-only links from the inputs to the output of a {2,4,1} network:
// the output reads the inputs directly, but the inputs never hand control
// to it outside the hidden layer.
func TestTopology_DirectInputToOutputHeads(t *testing.T) {
	g, err := builder.Layered([]int{2, 4, 1}, builder.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, g.ConnectHead(0, 6))
	require.NoError(t, g.ConnectHead(1, 6))
	assert.ErrorIs(t, g.ConnectTail(0, 6), core.ErrNoOutgoing)
	assert.ErrorIs(t, g.ConnectTail(1, 6), core.ErrNoOutgoing)

	out, _ := g.Node(6)
	assert.Len(t, out.Incoming(), 6)

	g.MapActivation(strategy.Step{Threshold: 0.5})
	g.MapLearningRate(0.2)

	net := network.New(g)
	require.NoError(t, net.Fit(xorX, xorY, 10))
	got, err := net.Predict(xorX)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, row := range got {
		assert.Contains(t, []float64{0, 1}, row[0], "step outputs are binary")
	}
}

// Repeating the same connection calls does not duplicate edges.
func TestTopology_RepeatedConnectionsDoNotDuplicate(t *testing.T) {
	g, err := builder.Layered([]int{2, 4, 1})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_ = g.ConnectHead(0, 6)
		_ = g.ConnectHead(1, 6)
	}
	assert.Equal(t, 2*4+4+2, g.EdgeCount())
}

// Hand-built 2-2-1 network with two disjoint input paths:
// 0 -> 2 -> 4 and 1 -> 3 -> 4.
func TestTopology_HandBuilt(t *testing.T) {
	g := core.NewGraph(core.WithWeightSource(weights.Constant(0.5)))
	g.AddNode(0, builder.InputNode())
	g.AddNode(1, builder.InputNode())
	g.AddNode(2, builder.HiddenNode())
	g.AddNode(3, builder.HiddenNode())
	g.AddNode(4, builder.OutputNode())

	for _, pair := range [][2]int{{0, 2}, {1, 3}, {2, 4}, {3, 4}} {
		require.NoError(t, g.ConnectHead(pair[0], pair[1]))
		require.NoError(t, g.ConnectTail(pair[1], pair[0]))
	}
	g.MapActivation(strategy.Linear{})

	net := network.New(g)
	require.NoError(t, net.ForwardPropagate([]float64{1, 3}))
	h2, _ := g.Node(2)
	h3, _ := g.Node(3)
	out, _ := g.Node(4)
	assert.Equal(t, 0.5, h2.Value)
	assert.Equal(t, 1.5, h3.Value)
	assert.Equal(t, 1.0, out.Value)

	require.NoError(t, net.BackwardPropagateError([]float64{0}))
	// each hidden node has a single incoming edge, so its own weight sum
	// equals the edge weight and it carries the whole output error
	assert.Equal(t, -1.0, out.Error)
	assert.Equal(t, -1.0, h2.Error)
	assert.Equal(t, -1.0, h3.Error)
}

// fanOut is 0,1 -> 2 -> 3,4 with linear activations and the given weights
// for 0->2, 1->2, 2->3 and 2->4.
func fanOut(t *testing.T, w02, w12, w23, w24 float64) (*core.Graph, *network.Network) {
	t.Helper()
	g := core.NewGraph(core.WithWeightSource(weights.Constant(1)))
	g.AddNode(0, builder.InputNode())
	g.AddNode(1, builder.InputNode())
	g.AddNode(2, builder.HiddenNode())
	g.AddNode(3, builder.OutputNode())
	g.AddNode(4, builder.OutputNode())
	for _, c := range []struct {
		head, tail int
		w          float64
	}{{0, 2, w02}, {1, 2, w12}, {2, 3, w23}, {2, 4, w24}} {
		require.NoError(t, g.Connect(c.head, c.tail))
		e, ok := g.EdgeBetween(c.head, c.tail)
		require.True(t, ok)
		e.Weight = c.w
	}
	g.MapActivation(strategy.Linear{})

	return g, network.New(g)
}

// The hidden error divides every outgoing weight by the hidden node's own
// incoming sum (1+3), not by the incoming sums of the outputs it feeds.
func TestBackwardError_UsesOwnIncomingSum(t *testing.T) {
	g, net := fanOut(t, 1, 3, 2, 0.5)

	require.NoError(t, net.ForwardPropagate([]float64{1, 1}))
	h, _ := g.Node(2)
	o3, _ := g.Node(3)
	o4, _ := g.Node(4)
	assert.Equal(t, 4.0, h.Value)
	assert.Equal(t, 8.0, o3.Value)
	assert.Equal(t, 2.0, o4.Value)

	require.NoError(t, net.BackwardPropagateError([]float64{0, 0}))
	assert.Equal(t, -8.0, o3.Error)
	assert.Equal(t, -2.0, o4.Error)
	// 2/4·(−8) + 0.5/4·(−2)
	assert.InDelta(t, -4.25, h.Error, 1e-12)
}

// A hidden node whose incoming weights sum to zero receives no error and
// never divides by zero.
func TestBackwardError_ZeroIncomingSumContributesNothing(t *testing.T) {
	g, net := fanOut(t, 1, -1, 2, 0.5)

	require.NoError(t, net.ForwardPropagate([]float64{1, 1}))
	require.NoError(t, net.BackwardPropagateError([]float64{1, 1}))
	o3, _ := g.Node(3)
	assert.Equal(t, 1.0, o3.Error)

	h, _ := g.Node(2)
	assert.False(t, math.IsNaN(h.Error))
	assert.Zero(t, h.Error)
}

// An extra hidden node fed by both inputs and by the output: the link
// from the output is incoming-only, so it neither creates a cycle nor
// takes part in the error pass.
func TestTopology_ExtraHiddenNode(t *testing.T) {
	g, err := builder.Layered([]int{2, 2, 2, 1}, builder.WithSeed(4))
	require.NoError(t, err)
	g.AddNode(7, builder.HiddenNode())

	require.NoError(t, g.ConnectHead(0, 7))
	require.NoError(t, g.ConnectTail(7, 0))
	require.NoError(t, g.ConnectHead(1, 7))
	require.NoError(t, g.ConnectTail(7, 1))
	require.NoError(t, g.ConnectHead(6, 7))
	assert.ErrorIs(t, g.ConnectTail(7, 6), core.ErrNoOutgoing)

	net := network.New(g)
	fwd, err := net.HasCycleForward()
	require.NoError(t, err)
	assert.False(t, fwd)
	require.NoError(t, net.Fit(xorX, xorY, 5))

	extra, _ := g.Node(7)
	assert.Zero(t, extra.Error, "node 7 feeds nothing, so no error reaches it")
	assert.NotZero(t, extra.Value)
}

// A relay node without an error rule computes values but is skipped by the
// error pass, so its error stays zero and its incoming weights do not move.
func TestTopology_RelayNodeWithoutErrorRule(t *testing.T) {
	g, err := builder.Layered([]int{2, 2, 2, 1}, builder.WithSeed(4))
	require.NoError(t, err)
	g.AddNode(7, core.NewNode(core.Hidden,
		core.WithIncoming(), core.WithOutgoing(),
		core.WithLearningRate(0.2),
		core.WithActivation(strategy.Passthrough{}),
		core.WithValueRule(strategy.WeightedSum{}),
		core.WithWeightRule(strategy.DeltaRule{}),
	))
	require.NoError(t, g.Connect(0, 7))
	require.NoError(t, g.Connect(1, 7))
	require.NoError(t, g.Connect(7, 6))

	net := network.New(g)
	require.NoError(t, net.ForwardPropagate([]float64{1, 1}))
	relay, _ := g.Node(7)
	e0, _ := g.EdgeBetween(0, 7)
	e1, _ := g.EdgeBetween(1, 7)
	assert.InDelta(t, e0.Weight+e1.Weight, relay.Value, 1e-12)

	require.NoError(t, net.BackwardPropagateError([]float64{1}))
	assert.Zero(t, relay.Error)

	before := e0.Weight
	require.NoError(t, net.BackwardPropagateWeights())
	assert.Equal(t, before, e0.Weight, "zero error leaves the relay's weights untouched")
}

func TestFit_NonZeroRateMovesWeights(t *testing.T) {
	g, err := builder.Layered([]int{2, 4, 1}, builder.WithSeed(7), builder.WithLearningRate(0.5))
	require.NoError(t, err)
	before := g.Weights()

	require.NoError(t, network.New(g).Fit(xorX, xorY, 3))
	assert.NotEqual(t, before, g.Weights())
	assert.Len(t, g.Weights(), len(before))
}
