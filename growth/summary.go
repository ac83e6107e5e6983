// SPDX-License-Identifier: MIT

package growth

// Summary counts what a Run did.
type Summary struct {
	RunID string
	Nodes int

	EdgesBefore int
	EdgesAfter  int

	// Selections by coin flip.
	Preferential int
	AdamicAdar   int

	// Adamic-Adar selections that fell back, by reason.
	NoSecondDegree    int
	DegreeOneNeighbor int

	// Steps that inserted a new edge versus hit an existing one.
	Added      int
	Duplicates int
}

// Steps returns the number of recorded steps.
func (s *Summary) Steps() int { return s.Preferential + s.AdamicAdar }

func (s *Summary) record(a Attachment) {
	switch a.Mechanism {
	case AdamicAdar:
		s.AdamicAdar++
	default:
		s.Preferential++
	}
	switch a.Fallback {
	case FallbackNoSecondDegree:
		s.NoSecondDegree++
	case FallbackDegreeOneNeighbor:
		s.DegreeOneNeighbor++
	}
	if a.Added {
		s.Added++
	} else {
		s.Duplicates++
	}
}
