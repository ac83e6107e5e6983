// SPDX-License-Identifier: MIT
// Package: netgrowth/metrics
//
// metrics.go - Compute and the individual metric functions.

package metrics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netgrowth/bfs"
	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/dfs"
)

// Compute returns every metric of g.
//
// Errors: core.ErrInsufficientNodes for a nil or empty graph.
func Compute(g *core.Graph) (*Report, error) {
	if err := checkGraph("Compute", g); err != nil {
		return nil, err
	}

	comps, err := dfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	r := &Report{
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Histogram: Histogram(g),
		Largest:   dfs.LargestOf(comps),
	}
	if len(comps) == 1 {
		if r.PathStats, err = allSources(g); err != nil {
			return nil, fmt.Errorf("Compute: %w", err)
		}
	}
	r.LocalClustering = LocalClustering(g)
	r.Clustering = meanOf(r.LocalClustering)
	r.DegreeConnectivity = AverageDegreeConnectivity(g)

	return r, nil
}

// Histogram groups nodes by degree and counts them.
func Histogram(g *core.Graph) map[int]int {
	out := make(map[int]int)
	for _, d := range g.Degrees() {
		out[d]++
	}

	return out
}

// LargestComponent returns the connected component with the most nodes.
//
// Errors: core.ErrInsufficientNodes for a nil or empty graph.
func LargestComponent(g *core.Graph) ([]int, error) {
	if err := checkGraph("LargestComponent", g); err != nil {
		return nil, err
	}
	comps, err := dfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("LargestComponent: %w", err)
	}

	return dfs.LargestOf(comps), nil
}

// Paths returns diameter and average path length, or Connected=false when
// some pair of nodes has no path.
//
// Errors: core.ErrInsufficientNodes for a nil or empty graph.
func Paths(g *core.Graph) (PathStats, error) {
	if err := checkGraph("Paths", g); err != nil {
		return PathStats{}, err
	}
	ps, err := allSources(g)
	if err != nil {
		return PathStats{}, fmt.Errorf("Paths: %w", err)
	}

	return ps, nil
}

// allSources runs one BFS per node. The first search that misses a node
// proves the graph disconnected.
func allSources(g *core.Graph) (PathStats, error) {
	nodes := g.Nodes()
	n := len(nodes)

	var (
		diameter int
		total    int
	)
	for _, s := range nodes {
		res, err := bfs.BFS(g, s)
		if err != nil {
			return PathStats{}, err
		}
		if len(res.Order) != n {
			return PathStats{Connected: false}, nil
		}
		if ecc := res.Eccentricity(); ecc > diameter {
			diameter = ecc
		}
		total += res.DistanceSum()
	}

	ps := PathStats{Connected: true, Diameter: diameter}
	if n > 1 {
		ps.AveragePathLength = float64(total) / float64(n*(n-1))
	}

	return ps, nil
}

// LocalClustering returns 2T/(d(d-1)) for every node, where T counts the
// connected pairs among its d neighbors. Nodes below degree 2 get 0.
func LocalClustering(g *core.Graph) map[int]float64 {
	nodes := g.Nodes()
	out := make(map[int]float64, len(nodes))

	var (
		i, j, d, triangles int
		nbrs               []int
	)
	for _, id := range nodes {
		nbrs = g.Neighbors(id)
		d = len(nbrs)
		if d < 2 {
			out[id] = 0
			continue
		}
		triangles = 0
		for i = 0; i < d; i++ {
			for j = i + 1; j < d; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					triangles++
				}
			}
		}
		out[id] = 2 * float64(triangles) / float64(d*(d-1))
	}

	return out
}

// Clustering returns the mean local clustering coefficient over all nodes,
// zeros included. An empty graph yields 0.
func Clustering(g *core.Graph) float64 {
	return meanOf(LocalClustering(g))
}

// AverageDegreeConnectivity maps every degree k present in g to the mean,
// over degree-k nodes, of their average neighbor degree. Isolated nodes
// contribute k = 0 with value 0.
func AverageDegreeConnectivity(g *core.Graph) map[int]float64 {
	byDegree := make(map[int][]float64)
	var d, sum int
	for _, id := range g.Nodes() {
		nbrs := g.Neighbors(id)
		d = len(nbrs)
		if d == 0 {
			byDegree[0] = append(byDegree[0], 0)
			continue
		}
		sum = 0
		for _, v := range nbrs {
			sum += g.Degree(v)
		}
		byDegree[d] = append(byDegree[d], float64(sum)/float64(d))
	}

	out := make(map[int]float64, len(byDegree))
	for k, vals := range byDegree {
		out[k] = stat.Mean(vals, nil)
	}

	return out
}

// meanOf averages map values in ascending key order for a stable sum.
func meanOf(m map[int]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}

	return stat.Mean(vals, nil)
}

func checkGraph(method string, g *core.Graph) error {
	if g == nil || g.NodeCount() == 0 {
		return fmt.Errorf("%s: empty graph: %w", method, core.ErrInsufficientNodes)
	}

	return nil
}
