// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: nodes, edges and adjacency.
// Mutating the clone never affects the source.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	var (
		id, v int
		inner map[int]struct{}
		cp    map[int]struct{}
	)
	for id, inner = range g.adjacency {
		cp = make(map[int]struct{}, len(inner))
		for v = range inner {
			cp[v] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}
