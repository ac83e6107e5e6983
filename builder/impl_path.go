// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_path.go - Nodes(n), Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Nodes are 0..n-1, added in ascending order.
//   - Path emits edges (i-1,i) for i=1..n-1; Cycle adds the closing (n-1,0).
//   - Returns only sentinel errors; never panics.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// Nodes returns a Constructor that adds n isolated nodes 0..n-1 (n ≥ 1).
func Nodes(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodNodes, n, MinNodes, ErrTooFewVertices)
		}
		addNodes(g, n)

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		addNodes(g, n)

		return chain(g, methodPath, n)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		addNodes(g, n)
		if err := chain(g, methodCycle, n); err != nil {
			return err
		}
		if _, err := g.AddEdge(n-1, FirstNodeID); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, n-1, FirstNodeID, err)
		}

		return nil
	}
}

// addNodes inserts 0..n-1 in ascending order.
func addNodes(g *core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
}

// chain emits (i-1,i) for i=1..n-1.
func chain(g *core.Graph, method string, n int) error {
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(i-1, i); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, i-1, i, err)
		}
	}

	return nil
}
