// SPDX-License-Identifier: MIT
// Package: netgrowth/growth
//
// adamic_adar.go - link prediction over second-degree neighbors.
//
// Contract:
//   - Candidates are the nodes at shortest-path distance exactly 2 (full BFS).
//   - score(j) = Σ_{v ∈ N(j)} 1/ln(deg v).
//   - Scoring is a checked computation: the first degree-1 neighbor aborts it
//     for every candidate and the call falls back to preferential attachment.
//   - Candidates and neighbors are visited in ascending ID order; only a
//     strictly greater score replaces the best, so the lowest ID wins ties.
//   - No randomness is consumed unless a fallback runs.

package growth

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/netgrowth/bfs"
	"github.com/katalvlaran/netgrowth/core"
)

// secondDegree is the shortest-path distance of link-prediction candidates.
const secondDegree = 2

// scoring is the outcome of scoring a candidate set.
type scoring struct {
	best  int
	score float64
	// defined is false when a degree-1 neighbor made a term undefined.
	defined bool
}

// SecondDegree returns the nodes at shortest-path distance exactly 2 from
// node, sorted ascending.
func SecondDegree(g *core.Graph, node int) ([]int, error) {
	res, err := bfs.BFS(g, node)
	if err != nil {
		return nil, fmt.Errorf("SecondDegree: %w", err)
	}

	return res.AtDepth(secondDegree), nil
}

// Score returns the Adamic-Adar score of candidate j. The boolean is false
// when a neighbor of j has degree 1 and the score is undefined.
func Score(g *core.Graph, j int) (float64, bool) {
	var (
		sum float64
		d   int
	)
	for _, v := range g.Neighbors(j) {
		d = g.Degree(v)
		if d == 1 {
			return 0, false
		}
		sum += 1 / math.Log(float64(d))
	}

	return sum, true
}

// scoreCandidates scores candidates in order and keeps the strict maximum.
func scoreCandidates(g *core.Graph, candidates []int) scoring {
	out := scoring{best: candidates[0], score: math.Inf(-1)}
	for _, j := range candidates {
		s, ok := Score(g, j)
		if !ok {
			return scoring{}
		}
		if s > out.score {
			out.best, out.score = j, s
		}
	}
	out.defined = true

	return out
}

// Predict links node to its best-scored second-degree neighbor, falling back
// to preferential attachment (drawing from src) when no candidate exists or
// scoring is undefined. The fallback reason is reported on the Attachment.
func Predict(g *core.Graph, node int, src rand.Source) (Attachment, error) {
	if err := checkAttach("Predict", g, node, src); err != nil {
		return Attachment{}, err
	}

	return predict(g, node, src)
}

// predict assumes checkAttach passed.
func predict(g *core.Graph, node int, src rand.Source) (Attachment, error) {
	candidates, err := SecondDegree(g, node)
	if err != nil {
		return Attachment{}, fmt.Errorf("Predict: %w", err)
	}

	reason := FallbackNoSecondDegree
	if len(candidates) > 0 {
		sc := scoreCandidates(g, candidates)
		if sc.defined {
			added, err := g.AddEdge(node, sc.best)
			if err != nil {
				return Attachment{}, fmt.Errorf("Predict: %w", err)
			}
			return Attachment{Node: node, Target: sc.best, Mechanism: AdamicAdar, Added: added}, nil
		}
		reason = FallbackDegreeOneNeighbor
	}

	a, err := attachPreferential(g, node, src)
	if err != nil {
		return Attachment{}, fmt.Errorf("Predict: fallback %s: %w", reason, err)
	}
	a.Mechanism = AdamicAdar
	a.Fallback = reason

	return a, nil
}
