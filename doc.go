// Package netgrowth simulates the growth of an undirected social network
// and measures what grew.
//
// A run starts from n isolated nodes, seeds a few random edges inside one
// group of four, then performs k growth steps. Each step picks a node
// uniformly and flips a coin with p = deg/(deg+c):
//
//	heads: Adamic-Adar link prediction to the best friend-of-a-friend
//	tails: preferential attachment, weight (deg(i)+1)*(deg(j)+1)
//
// Adamic-Adar falls back to preferential attachment when the node has no
// second-degree neighbors or a candidate has a neighbor of degree 1.
//
// Packages:
//
//	core/      - simple undirected graph with integer node IDs
//	bfs/, dfs/ - traversals, distance layers and connected components
//	builder/   - initializer and small deterministic graph constructors
//	growth/    - mechanism selection, both mechanisms and the growth engine
//	metrics/   - degree histogram, largest component, diameter, clustering
//	persist/   - semicolon-delimited edge files with a metrics row
//	frames/    - force-directed layout and per-step frames for animation
//	telemetry/ - Prometheus collector for runs and reports
//	config/    - YAML run configuration with validation
//
// The netgrowth command wires them together:
//
//	go run ./cmd/netgrowth simulate -n 40 -k 100 -c 1 --seed 7
//	go run ./cmd/netgrowth analyze graph_40_100_1.csv
package netgrowth
