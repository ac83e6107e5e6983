// Package core: node and query method implementations.
//
// Node operations are O(1) amortized; the sorted list queries pay an extra
// log factor so that callers iterate in a reproducible order.

package core

import "sort"

// AddNode inserts a node with the given ID into the Graph.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// Degree returns the number of neighbors of id; unknown nodes have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Unknown nodes yield an empty (nil) slice.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	inner := g.adjacency[id]
	if len(inner) == 0 {
		return nil
	}
	out := make([]int, 0, len(inner))
	for v := range inner {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degrees returns a snapshot map from node ID to degree.
// Complexity: O(V).
func (g *Graph) Degrees() map[int]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]int, len(g.adjacency))
	for id, inner := range g.adjacency {
		out[id] = len(inner)
	}

	return out
}

// ensureNode lazily creates the adjacency entry for id.
// Caller must hold the write lock.
func (g *Graph) ensureNode(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}
