// SPDX-License-Identifier: MIT
// Package: netgrowth/frames
//
// layout.go - force-directed node positions.

package frames

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netgrowth/core"
)

// Point is a 2-D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutOptions tunes the Eades optimizer.
type LayoutOptions struct {
	Repulsion float64
	Rate      float64
	Updates   int
	Theta     float64
	Seed      uint64
}

// DefaultLayoutOptions returns the settings used by Layout when none are given.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   50,
		Theta:     0.2,
		Seed:      1,
	}
}

// ErrEmptyGraph indicates a layout request for a nil or empty graph.
var ErrEmptyGraph = fmt.Errorf("frames: empty graph: %w", core.ErrInsufficientNodes)

// Layout returns one position per node of g.
func Layout(g *core.Graph, opts LayoutOptions) (map[int]Point, error) {
	if g == nil || g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	ug := orderedGraph{UndirectedGraph: toGonum(g), src: g}
	eades := layout.EadesR2{
		Repulsion: opts.Repulsion,
		Rate:      opts.Rate,
		Updates:   opts.Updates,
		Theta:     opts.Theta,
		Src:       rand.NewPCG(opts.Seed, opts.Seed),
	}
	o := layout.NewOptimizerR2(ug, eades.Update)
	for o.Update() {
	}

	out := make(map[int]Point, g.NodeCount())
	for _, id := range g.Nodes() {
		v := o.Coord2(int64(id))
		out[id] = Point{X: v.X, Y: v.Y}
	}

	return out, nil
}

// orderedGraph yields nodes and neighbors in ascending ID order, so the
// optimizer's random initial placement and force sums are reproducible.
type orderedGraph struct {
	*simple.UndirectedGraph
	src *core.Graph
}

// Nodes returns all nodes in ascending ID order.
func (o orderedGraph) Nodes() graph.Nodes {
	return iterator.NewOrderedNodes(gonumNodes(o.src.Nodes()))
}

// From returns the neighbors of id in ascending ID order.
func (o orderedGraph) From(id int64) graph.Nodes {
	nbrs := o.src.Neighbors(int(id))
	if len(nbrs) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(gonumNodes(nbrs))
}

func gonumNodes(ids []int) []graph.Node {
	out := make([]graph.Node, len(ids))
	for i, id := range ids {
		out[i] = simple.Node(id)
	}

	return out
}

// toGonum copies g into a gonum undirected graph, isolated nodes included.
func toGonum(g *core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return ug
}
