package growth_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/growth"
)

// ExamplePredict shows link prediction adding a chord to a 4-cycle.
func ExamplePredict() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(4))

	// Node 2 is the only node at distance 2 from node 0. Its neighbors 1 and 3
	// have degree 2, so the score is defined and no fallback runs.
	a, _ := growth.Predict(g, 0, rand.NewPCG(1, 1))

	fmt.Println(a.Node, "->", a.Target, a.Mechanism, a.Fallback)
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// 0 -> 2 adamic_adar none
	// edges: 5
}
