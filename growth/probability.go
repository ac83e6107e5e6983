// SPDX-License-Identifier: MIT
// Package: netgrowth/growth
//
// probability.go - mechanism selection probability.

package growth

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// Probability returns deg(node)/(deg(node)+c), the chance that a step on
// node selects Adamic-Adar instead of preferential attachment.
//
// The value is 0 for an isolated node, strictly inside (0,1) otherwise,
// and increases with degree for fixed c.
//
// Errors: ErrInvalidParameter for c ≤ 0 or nil g; core.ErrNodeNotFound.
func Probability(g *core.Graph, node int, c float64) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("Probability: nil graph: %w", ErrInvalidParameter)
	}
	if c <= 0 {
		return 0, fmt.Errorf("Probability: c=%g must be > 0: %w", c, ErrInvalidParameter)
	}
	if !g.HasNode(node) {
		return 0, fmt.Errorf("Probability: node %d: %w", node, core.ErrNodeNotFound)
	}
	d := float64(g.Degree(node))

	return d / (d + c), nil
}
