// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed, WithSource or WithRand.

package builder

import (
	"fmt"
	"math/rand/v2"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSource wraps src in a *rand.Rand. Sharing one Source between the
// builder and a growth engine makes a whole run reproducible from one seed.
// Panics on nil.
func WithSource(src rand.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.rng = rand.New(src)
	}
}

// WithSeed creates a new PCG-backed *rand.Rand with the given seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSeedEdgeRange overrides the inclusive [lo,hi] range from which
// Initializer draws its number of seeding attempts.
// Panics when lo < 1 or hi < lo.
func WithSeedEdgeRange(lo, hi int) BuilderOption {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("builder: WithSeedEdgeRange(%d,%d): need 1 <= lo <= hi", lo, hi))
	}
	return func(c *builderConfig) {
		c.minSeedEdges = lo
		c.maxSeedEdges = hi
	}
}
