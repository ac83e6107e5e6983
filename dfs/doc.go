// Package dfs provides iterative depth-first traversal over a core.Graph and
// the connected-component discovery built on it.
//
// What
//
//   - DFS(g, start): pre-order discovery from a single node.
//   - DFS(g, _, WithFullTraversal()): forest traversal over every node in
//     ascending ID order; each tree is one connected component.
//   - Components(g) / Largest(g): component lists in discovery order; the
//     largest component is the first one discovered among those of maximal size.
//
// Traversal order
//
//	Neighbors are pushed in ascending order and the stack pops the most
//	recently pushed node first, so a node's largest unvisited neighbor is
//	explored first. The order is reproducible for a given graph.
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if startID is missing (single-source mode).
//   - any error returned by OnVisit, wrapped with the node ID.
package dfs
