// SPDX-License-Identifier: MIT

package builder

// Constructor names used to prefix errors.
const (
	methodNodes        = "Nodes"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodRandomSeed   = "RandomSeedEdges"
	methodInitializer  = "Initializer"
)

// Minimum node counts.
const (
	MinNodes         = 1
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
)

// FirstNodeID is the ID of the first node in every sequential topology.
// Star uses it as its center.
const FirstNodeID = 0

// SeedGroupSize is the number of distinct nodes sampled by RandomSeedEdges.
// Every seeding attempt joins two members of this group.
const SeedGroupSize = 4

// Default inclusive bounds for the number of seeding attempts drawn by Initializer.
const (
	DefaultMinSeedEdges = 4
	DefaultMaxSeedEdges = 16
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
