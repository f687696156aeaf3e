package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neurograph/bfs"
	"github.com/katalvlaran/neurograph/builder"
	"github.com/katalvlaran/neurograph/core"
)

func expandAll(int, *core.Node) (bool, error) { return true, nil }

func TestWalk_Errors(t *testing.T) {
	_, err := bfs.Walk(nil, nil, core.Forward, expandAll)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.Walk(g, nil, core.Forward, nil)
	assert.ErrorIs(t, err, bfs.ErrVisitNil)

	_, err = bfs.Walk(g, nil, core.Forward, expandAll, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Walk(g, []int{4}, core.Forward, expandAll)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestWalk_LayersForwardAndBackward(t *testing.T) {
	g, err := builder.Layered([]int{2, 3, 1})
	require.NoError(t, err)

	var layers [][]int
	res, err := bfs.Walk(g, g.InputIDs(), core.Forward, expandAll,
		bfs.WithOnLayer(func(_ int, ids []int) error {
			layers = append(layers, append([]int(nil), ids...))
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3, 4}, {5}}, layers)
	assert.Equal(t, 3, res.Layers)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)

	res, err = bfs.Walk(g, g.OutputIDs(), core.Backward, expandAll)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 3, 4, 0, 1}, res.Order)
}

func TestWalk_SkippedNodesAreNotExpanded(t *testing.T) {
	g, err := builder.Layered([]int{1, 1, 1})
	require.NoError(t, err)

	res, err := bfs.Walk(g, []int{0}, core.Forward, func(id int, _ *core.Node) (bool, error) {
		return id != 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestWalk_RevisitsAcrossLayers(t *testing.T) {
	g, err := builder.Layered([]int{1, 1, 1})
	require.NoError(t, err)
	// skip connection 0 -> 2 puts the output in layers 1 and 2
	require.NoError(t, g.Connect(0, 2))

	res, err := bfs.Walk(g, []int{0}, core.Forward, expandAll)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2}, res.Order)
}

func TestWalk_MaxDepthStopsCycles(t *testing.T) {
	g, err := builder.Layered([]int{1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, g.Connect(2, 1))

	_, err = bfs.Walk(g, []int{0}, core.Forward, expandAll, bfs.WithMaxDepth(g.Size()))
	assert.ErrorIs(t, err, bfs.ErrDepthExceeded)
}

func TestWalk_VisitAndHookErrors(t *testing.T) {
	g, err := builder.Layered([]int{1, 1})
	require.NoError(t, err)
	boom := errors.New("boom")

	_, err = bfs.Walk(g, []int{0}, core.Forward, func(int, *core.Node) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)

	_, err = bfs.Walk(g, []int{0}, core.Forward, expandAll,
		bfs.WithOnLayer(func(int, []int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestWalk_Cancelled(t *testing.T) {
	g, err := builder.Layered([]int{1, 1})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bfs.Walk(g, []int{0}, core.Forward, expandAll, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
