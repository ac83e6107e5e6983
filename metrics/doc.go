// Package metrics computes structural metrics of a finished core.Graph.
//
// Compute returns a Report holding:
//
//   - Histogram:  degree -> number of nodes with that degree.
//   - Largest:    the biggest connected component (DFS discovery order; ties
//     go to the component discovered first).
//   - Diameter and AveragePathLength, defined only when Connected is true.
//     The average divides the summed ordered-pair distances by n*(n-1).
//   - Local clustering 2T/(d(d-1)) per node (0 below degree 2) and their mean.
//   - Average degree connectivity: for every degree k, the mean over degree-k
//     nodes of their average neighbor degree (0 for k = 0).
//
// A disconnected graph is a valid state, not an error: the path fields are
// simply undefined. Only an empty or nil graph fails, with
// core.ErrInsufficientNodes.
//
// Complexity: O(V·(V+E)) for the all-sources BFS; O(Σ d²) for clustering.
package metrics
