// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// impl_initializer.go - the seeded starting state of a growth run.
//
// RandomSeedEdges(k):
//   - Samples SeedGroupSize distinct nodes from g (partial Fisher–Yates over
//     the ascending node list).
//   - Performs k attempts. Each attempt draws a group index i and an offset
//     o ∈ {1,2,3} and joins group[i] with group[(i+o) mod 4].
//   - Attempts that hit an existing edge are no-ops, so the resulting edge
//     count lies in [min(k,1), min(k,6)].
//
// Initializer(n):
//   - Adds nodes 0..n-1, draws k uniformly from [minSeedEdges, maxSeedEdges]
//     and delegates to RandomSeedEdges(k).
//
// Draw order (stable for a fixed seed):
//   - Initializer: IntN for k, then RandomSeedEdges draws.
//   - RandomSeedEdges: SeedGroupSize IntN for the group, then two IntN per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/core"
)

// RandomSeedEdges returns a Constructor that performs k seeding attempts
// among SeedGroupSize randomly chosen nodes of g.
//
// Errors:
//   - ErrTooFewVertices if k < 0.
//   - core.ErrInsufficientNodes if g has fewer than SeedGroupSize nodes.
//   - ErrNeedRandSource if no RNG is configured.
func RandomSeedEdges(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d < 0: %w", methodRandomSeed, k, ErrTooFewVertices)
		}
		nodes := g.Nodes()
		if len(nodes) < SeedGroupSize {
			return fmt.Errorf("%s: have %d nodes, need %d: %w",
				methodRandomSeed, len(nodes), SeedGroupSize, core.ErrInsufficientNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSeed, ErrNeedRandSource)
		}

		var i, j int
		for i = 0; i < SeedGroupSize; i++ {
			j = i + cfg.rng.IntN(len(nodes)-i)
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
		group := nodes[:SeedGroupSize]

		var (
			idx, off int
			u, v     int
		)
		for a := 0; a < k; a++ {
			idx = cfg.rng.IntN(SeedGroupSize)
			off = 1 + cfg.rng.IntN(SeedGroupSize-1)
			u, v = group[idx], group[(idx+off)%SeedGroupSize]
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSeed, u, v, err)
			}
		}

		return nil
	}
}

// Initializer returns a Constructor that builds n isolated nodes and seeds
// them with a random number of edges drawn from the configured range.
//
// Errors:
//   - core.ErrInsufficientNodes if n < SeedGroupSize.
//   - ErrNeedRandSource if no RNG is configured.
func Initializer(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < SeedGroupSize {
			return fmt.Errorf("%s: n=%d < %d: %w", methodInitializer, n, SeedGroupSize, core.ErrInsufficientNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodInitializer, ErrNeedRandSource)
		}

		addNodes(g, n)
		k := cfg.minSeedEdges + cfg.rng.IntN(cfg.maxSeedEdges-cfg.minSeedEdges+1)
		if err := RandomSeedEdges(k)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodInitializer, err)
		}

		return nil
	}
}
