// SPDX-License-Identifier: MIT
// Package: netgrowth/growth
//
// types.go - sentinel errors, mechanism tags and the per-step Attachment record.

package growth

import "errors"

// ErrInvalidParameter indicates a non-positive c or iteration count, or a
// nil graph or random source.
var ErrInvalidParameter = errors.New("growth: invalid parameter")

// Mechanism identifies an edge-formation rule.
type Mechanism int

const (
	// PreferentialAttachment links to a degree-weighted random node.
	PreferentialAttachment Mechanism = iota
	// AdamicAdar links to the best-scored second-degree neighbor.
	AdamicAdar
)

// String returns the snake_case name used in logs, metrics and frame files.
func (m Mechanism) String() string {
	switch m {
	case PreferentialAttachment:
		return "preferential_attachment"
	case AdamicAdar:
		return "adamic_adar"
	default:
		return "unknown"
	}
}

// Fallback records why Adamic-Adar delegated to preferential attachment.
type Fallback int

const (
	// NoFallback means the selected mechanism ran to completion.
	NoFallback Fallback = iota
	// FallbackNoSecondDegree means no node sits at distance exactly 2.
	FallbackNoSecondDegree
	// FallbackDegreeOneNeighbor means a scored neighbor had degree 1 (ln 1 = 0).
	FallbackDegreeOneNeighbor
)

// String returns the snake_case name of the fallback reason.
func (f Fallback) String() string {
	switch f {
	case NoFallback:
		return "none"
	case FallbackNoSecondDegree:
		return "no_second_degree"
	case FallbackDegreeOneNeighbor:
		return "degree_one_neighbor"
	default:
		return "unknown"
	}
}

// Attachment describes one applied step.
type Attachment struct {
	// Step is the zero-based iteration index (0 outside an Engine run).
	Step int
	// Node is the sampled node; Target is the other endpoint.
	Node, Target int
	// Mechanism is the rule picked by the coin flip.
	Mechanism Mechanism
	// Fallback is non-zero when Adamic-Adar delegated to preferential attachment.
	Fallback Fallback
	// Added is false when the edge already existed.
	Added bool
}

// Applied returns the mechanism that actually chose Target.
func (a Attachment) Applied() Mechanism {
	if a.Fallback != NoFallback {
		return PreferentialAttachment
	}

	return a.Mechanism
}
