// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng          = nil   (deterministic constructors only, unless seeded)
//   - minSeedEdges = 4
//   - maxSeedEdges = 16

package builder

import (
	"math/rand/v2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Inclusive range for the number of seeding attempts drawn by Initializer.
	minSeedEdges int
	maxSeedEdges int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		minSeedEdges: DefaultMinSeedEdges,
		maxSeedEdges: DefaultMaxSeedEdges,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
