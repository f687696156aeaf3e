package builder_test

import (
	"fmt"

	"github.com/katalvlaran/neurograph/builder"
)

// ExampleLayered builds the 2-4-1 network used for XOR.
func ExampleLayered() {
	g, err := builder.Layered([]int{2, 4, 1}, builder.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Size(), g.EdgeCount(), g.InputIDs(), g.OutputIDs())
	fmt.Println(g.NodesAtDepth(1))

	// Output:
	// 7 12 [0 1] [6]
	// [2 3 4 5]
}
