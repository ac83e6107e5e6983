// SPDX-License-Identifier: MIT

package metrics

// PathStats holds the all-pairs shortest-path summary of a graph.
// Diameter and AveragePathLength are meaningful only when Connected is true.
type PathStats struct {
	Connected         bool
	Diameter          int
	AveragePathLength float64
}

// Report is the full metrics tuple of one graph.
type Report struct {
	Nodes int
	Edges int

	Histogram map[int]int
	Largest   []int

	PathStats

	LocalClustering map[int]float64
	Clustering      float64

	DegreeConnectivity map[int]float64
}

// DiameterValue returns the diameter and whether it is defined.
func (r *Report) DiameterValue() (int, bool) {
	return r.Diameter, r.Connected
}

// AveragePathValue returns the average path length and whether it is defined.
func (r *Report) AveragePathValue() (float64, bool) {
	return r.AveragePathLength, r.Connected
}
