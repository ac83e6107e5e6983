// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: center FirstNodeID joined to leaves 1..n-1 (n ≥ 2).
//   - Complete: every pair {i,j}, i<j, emitted in lexicographic order (n ≥ 1).
//
// Complexity: Star O(n); Complete O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		addNodes(g, n)
		for leaf := 1; leaf < n; leaf++ {
			if _, err := g.AddEdge(FirstNodeID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, FirstNodeID, leaf, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		addNodes(g, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if _, err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
