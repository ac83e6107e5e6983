// SPDX-License-Identifier: MIT
// Package: netgrowth/cmd/netgrowth
//
// report.go - console rendering of metric reports.

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/netgrowth/metrics"
	"github.com/katalvlaran/netgrowth/persist"
)

// printReport writes the metrics tuple in the same rendering as edge files.
func printReport(w io.Writer, r *metrics.Report) {
	d, ok := r.DiameterValue()
	avg, _ := r.AveragePathValue()
	fmt.Fprintf(w, "Degree distribution: %s\n", persist.FormatHistogram(r.Histogram))
	fmt.Fprintf(w, "Maximum connected components: %s\n", persist.FormatNodes(r.Largest))
	fmt.Fprintf(w, "Network diameter: %s\n", persist.FormatOptionalInt(d, ok))
	fmt.Fprintf(w, "Average path length: %s\n", persist.FormatOptionalFloat(avg, ok))
	fmt.Fprintf(w, "Clustering coefficient: %s\n", persist.FormatFloat(r.Clustering))
}

// printConnectivity writes average degree connectivity in ascending degree order.
func printConnectivity(w io.Writer, conn map[int]float64) {
	degrees := make([]int, 0, len(conn))
	for k := range conn {
		degrees = append(degrees, k)
	}
	sort.Ints(degrees)

	parts := make([]string, len(degrees))
	for i, k := range degrees {
		parts[i] = strconv.Itoa(k) + ": " + persist.FormatFloat(conn[k])
	}
	fmt.Fprintf(w, "Average degree connectivity: {%s}\n", strings.Join(parts, ", "))
}

func printGraphLine(w io.Writer, nodes, edges int) {
	fmt.Fprintf(w, "Graph with %d nodes and %d edges\n", nodes, edges)
}
