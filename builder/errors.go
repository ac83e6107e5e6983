// SPDX-License-Identifier: MIT
// Package: netgrowth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context using %w.
//   - core.ErrInsufficientNodes is reused (not redefined) for seeding a graph
//     with fewer than SeedGroupSize nodes.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed, WithSource or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure during construction
// (nil constructor, nil target graph).
var ErrConstructFailed = errors.New("builder: construction failed")
