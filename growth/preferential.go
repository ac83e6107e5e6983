// SPDX-License-Identifier: MIT
// Package: netgrowth/growth
//
// preferential.go - degree-weighted attachment.
//
// Contract:
//   - Candidates are every node except node, in ascending ID order.
//   - Weight of candidate j is (deg(node)+1)*(deg(j)+1) ≥ 1, so every
//     candidate is selectable.
//   - Exactly one Float64 is drawn from src (through sampleuv.Weighted).
//   - The chosen edge is inserted idempotently; a duplicate is reported
//     with Added=false and never retried.
//
// Complexity: O(V log V) for the node listing plus O(V) for the sampler.

package growth

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/netgrowth/core"
)

// Attach links node to a degree-weighted random partner, drawing from src.
func Attach(g *core.Graph, node int, src rand.Source) (Attachment, error) {
	if err := checkAttach("Attach", g, node, src); err != nil {
		return Attachment{}, err
	}

	return attachPreferential(g, node, src)
}

// checkAttach validates the shared preconditions of both mechanisms.
func checkAttach(method string, g *core.Graph, node int, src rand.Source) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidParameter)
	}
	if src == nil {
		return fmt.Errorf("%s: nil source: %w", method, ErrInvalidParameter)
	}
	if !g.HasNode(node) {
		return fmt.Errorf("%s: node %d: %w", method, node, core.ErrNodeNotFound)
	}
	if n := g.NodeCount(); n < 2 {
		return fmt.Errorf("%s: have %d nodes, need 2: %w", method, n, core.ErrInsufficientNodes)
	}

	return nil
}

// attachPreferential assumes checkAttach passed.
func attachPreferential(g *core.Graph, node int, src rand.Source) (Attachment, error) {
	nodes := g.Nodes()
	candidates := make([]int, 0, len(nodes)-1)
	weights := make([]float64, 0, len(nodes)-1)

	base := float64(g.Degree(node) + 1)
	for _, j := range nodes {
		if j == node {
			continue
		}
		candidates = append(candidates, j)
		weights = append(weights, base*float64(g.Degree(j)+1))
	}

	idx, ok := sampleuv.NewWeighted(weights, src).Take()
	if !ok {
		return Attachment{}, fmt.Errorf("Attach: node %d: no selectable candidate: %w", node, core.ErrInsufficientNodes)
	}
	target := candidates[idx]

	added, err := g.AddEdge(node, target)
	if err != nil {
		return Attachment{}, fmt.Errorf("Attach: %w", err)
	}

	return Attachment{
		Node:      node,
		Target:    target,
		Mechanism: PreferentialAttachment,
		Added:     added,
	}, nil
}
