package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/metrics"
)

// ExampleCompute prints the metrics tuple of a 5-node path.
func ExampleCompute() {
	g, _ := builder.BuildGraph(nil, builder.Path(5))
	r, _ := metrics.Compute(g)

	d, ok := r.DiameterValue()
	fmt.Println("diameter:", d, ok)
	fmt.Println("average path:", r.AveragePathLength)
	fmt.Println("clustering:", r.Clustering)
	fmt.Println("degree 2 nodes:", r.Histogram[2])
	// Output:
	// diameter: 4 true
	// average path: 2
	// clustering: 0
	// degree 2 nodes: 3
}
