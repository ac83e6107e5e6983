package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty simple undirected graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds nodes 0, 1, 2):
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	// 3) Re-adding an edge in either orientation is a no-op:
	added, _ := g.AddEdge(1, 0)

	// 4) Self-loops are rejected:
	_, err := g.AddEdge(2, 2)

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Edges:", g.EdgeCount(), "re-added:", added)
	fmt.Println("Degree(1):", g.Degree(1))
	fmt.Println("Self-loop rejected:", errors.Is(err, core.ErrInvalidEdge))

	// Output:
	// Nodes: [0 1 2]
	// Edges: 3 re-added: false
	// Degree(1): 2
	// Self-loop rejected: true
}
