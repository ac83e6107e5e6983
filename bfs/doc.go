// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → shortest distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Helpers on Result: AtDepth(d) for the exact-distance ring,
//     Eccentricity() and DistanceSum() for path metrics, PathTo(dest).
//   - Supports an OnVisit hook (may abort with an error) and MaxDepth.
//
// Why
//
//   - Second-degree neighbor discovery for link prediction needs the true
//     shortest distance: a node reachable in two hops and in one hop is a
//     direct neighbor, never a distance-2 candidate. BFS depth is exactly that.
//   - Diameter and average path length are aggregates over one BFS per node.
//
// Determinism
//
//	Because core.Graph.Neighbors returns IDs sorted ascending, and BFS enqueues
//	neighbors in that order, the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E·log d)   (neighbor lists are sorted on demand)
//   - Memory: O(V)             (queue, Depth map, Parent map, visited set)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
