// SPDX-License-Identifier: MIT
// Package: netgrowth/core
//
// methods_edges.go - edge insertion and edge queries.
// Policy:
//   - Edges are undirected and mirrored in adjacency[u][v] and adjacency[v][u].
//   - Self-loops are rejected with ErrInvalidEdge before any mutation.
//   - Re-adding an existing edge leaves the graph untouched and is not an error.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
//
// Returns:
//   - added: true if the edge was new, false if it already existed.
//   - err:   ErrInvalidEdge when u == v (graph is left unchanged).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if u == v {
		return false, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidEdge)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)
	if _, exists := g.adjacency[u][v]; exists {
		return false, nil // edge-set semantics: duplicate is a no-op
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, normalized (U < V) and sorted by (U,V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, inner := range g.adjacency {
		for v := range inner {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
