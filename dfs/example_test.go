package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/neurograph/builder"
	"github.com/katalvlaran/neurograph/core"
	"github.com/katalvlaran/neurograph/dfs"
)

// ExampleFindCycle reports the closed path created by a back edge.
func ExampleFindCycle() {
	g, _ := builder.Layered([]int{1, 1, 1, 1})
	fmt.Println(dfs.FindCycle(g, core.Forward))

	// wire 2 -> 1 on both sides
	_ = g.Connect(2, 1)
	fmt.Println(dfs.FindCycle(g, core.Forward))

	// Output:
	// [] <nil>
	// [1 2 1] <nil>
}
