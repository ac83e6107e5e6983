// SPDX-License-Identifier: MIT
// Package: netgrowth/cmd/netgrowth
//
// analyze.go - the analyze sub-command: load a saved graph and report on it.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/netgrowth/config"
	"github.com/katalvlaran/netgrowth/metrics"
	"github.com/katalvlaran/netgrowth/persist"
)

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute metrics of a saved graph",
		Long: `Load an edge file written by simulate and print its degree distribution,
largest connected component, diameter, average path length, clustering
coefficient and average degree connectivity.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				return fmt.Errorf("analyze: an input file is required (--input or argument)")
			}
			level := root.logLevel
			if level == "" {
				level = config.DefaultLogLevel
			}
			log, err := newLogger(level, root.dev)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runAnalyze(cmd, log, input)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "edge file to analyze")

	return cmd
}

func runAnalyze(cmd *cobra.Command, log *zap.Logger, input string) error {
	g, err := persist.Load(input)
	if err != nil {
		return err
	}
	log.Info("graph loaded", zap.String("path", input), zap.Int("nodes", g.NodeCount()), zap.Int("edges", g.EdgeCount()))

	r, err := metrics.Compute(g)
	if err != nil {
		return err
	}
	if !r.Connected {
		log.Warn("graph is not connected, diameter and average path length are undefined")
	}

	out := cmd.OutOrStdout()
	printReport(out, r)
	printConnectivity(out, r.DegreeConnectivity)
	printGraphLine(out, r.Nodes, r.Edges)

	return nil
}
