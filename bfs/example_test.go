package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/neurograph/bfs"
	"github.com/katalvlaran/neurograph/builder"
	"github.com/katalvlaran/neurograph/core"
)

// ExampleWalk prints the frontiers of a 2-2-1 network from its inputs.
func ExampleWalk() {
	g, _ := builder.Layered([]int{2, 2, 1})

	_, err := bfs.Walk(g, g.InputIDs(), core.Forward,
		func(int, *core.Node) (bool, error) { return true, nil },
		bfs.WithOnLayer(func(depth int, ids []int) error {
			fmt.Println(depth, ids)
			return nil
		}))
	fmt.Println(err)

	// Output:
	// 0 [0 1]
	// 1 [2 3]
	// 2 [4]
	// <nil>
}
