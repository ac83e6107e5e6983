// SPDX-License-Identifier: MIT

// Command netgrowth grows a random network by preferential attachment and
// Adamic-Adar link prediction, then reports its structural metrics.
//
//	netgrowth simulate -n 40 -k 100 -c 1 --seed 7 --frames
//	netgrowth analyze --input graph_40_100_1.csv
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
