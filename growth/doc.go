// Package growth grows an undirected core.Graph one edge per step.
//
// Each step samples a node uniformly, computes
//
//	p = deg(node) / (deg(node) + c)
//
// and flips a coin: a draw below p selects Adamic-Adar link prediction,
// otherwise preferential attachment runs.
//
//   - PreferentialAttachment weights every other node j by
//     (deg(node)+1)*(deg(j)+1) and draws one proportionally (gonum sampleuv).
//   - AdamicAdar scores the nodes at shortest-path distance exactly 2 by
//     Σ 1/ln(deg v) over their neighbors v and links to the best one. It falls
//     back to preferential attachment when no such node exists, or when any
//     scored neighbor has degree 1.
//
// Determinism:
//
//   - All randomness comes from one injected math/rand/v2 Source.
//   - Per step the draws are: IntN (node), Float64 (coin), then one Float64
//     inside the weighted sampler if preferential attachment runs.
//   - Adamic-Adar consumes no randomness; ties go to the lowest node ID.
//
// Errors:
//
//   - ErrInvalidParameter: c ≤ 0, iterations ≤ 0, nil graph or nil source.
//   - core.ErrInsufficientNodes: fewer than two nodes.
//   - core.ErrNodeNotFound: attaching a node the graph does not hold.
//
// A failing step aborts the run; the graph keeps the edges of earlier steps.
package growth
