// Package core provides the in-memory simple undirected Graph that every other
// netgrowth package mutates or reads.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Integer node identifiers, unique per graph.
//   - Undirected edges: AddEdge(a,b) and AddEdge(b,a) denote the same edge.
//   - No self-loops: AddEdge(v,v) returns ErrInvalidEdge.
//   - No parallel edges: re-adding an existing edge is a silent no-op.
//   - Nodes and edges are only ever added; there is no removal API.
//
// Storage is a single adjacency map, adjacency[u][v] = struct{}{}, mirrored for
// both endpoints, so existence checks and insertions are O(1). Neighbor
// enumeration walks O(deg) entries but Neighbors sorts them, so a call costs
// O(deg·log deg).
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() return results sorted in ascending order.
//	Every traversal and every random draw built on top of core relies on that
//	order to be reproducible for a fixed seed.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int)                   // O(1), idempotent
//	HasNode(id int) bool              // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) (bool, error)   // O(1), idempotent, ErrInvalidEdge on u==v
//	HasEdge(u, v int) bool            // O(1)
//
//	// Query
//	Degree(id int) int                // O(1)
//	Neighbors(id int) []int           // O(d·log d), sorted
//	Nodes() []int                     // O(V·log V), sorted
//	Edges() []Edge                    // O(E·log E), sorted by (U,V)
//	NodeCount() int / EdgeCount() int // O(1)
//
//	// Cloning
//	Clone() *Graph                    // O(V+E) deep copy
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map. Growth runs mutate one
//	exclusively-owned graph sequentially; the lock only makes concurrent
//	readers (e.g. a metrics pass on a clone) safe.
package core
