// SPDX-License-Identifier: MIT
// Package: netgrowth/cmd/netgrowth
//
// simulate.go - the simulate sub-command: seed, grow, measure, persist.

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/config"
	"github.com/katalvlaran/netgrowth/core"
	"github.com/katalvlaran/netgrowth/frames"
	"github.com/katalvlaran/netgrowth/growth"
	"github.com/katalvlaran/netgrowth/metrics"
	"github.com/katalvlaran/netgrowth/persist"
	"github.com/katalvlaran/netgrowth/telemetry"
)

type simulateFlags struct {
	configPath    string
	nodes         int
	iterations    int
	c             float64
	seed          uint64
	output        string
	frames        bool
	framesOutput  string
	metricsOutput string
}

func newSimulateCmd(root *rootFlags) *cobra.Command {
	flags := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Grow a random network and save it with its metrics",
		Long: `Seed n isolated nodes with a few random edges inside one group of four,
run k growth steps with mechanism parameter c, print the metrics of the
result and save the edge file. Optionally write a frames document for
animation and a Prometheus textfile with run metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, root, flags)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel, cfg.Dev)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runSimulate(cmd, log, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML run configuration")
	f.IntVarP(&flags.nodes, "nodes", "n", config.DefaultNodes, "number of nodes")
	f.IntVarP(&flags.iterations, "iterations", "k", config.DefaultIterations, "number of growth steps")
	f.Float64VarP(&flags.c, "c", "c", config.DefaultC, "mechanism parameter, p = deg/(deg+c)")
	f.Uint64Var(&flags.seed, "seed", config.DefaultSeed, "random seed")
	f.StringVarP(&flags.output, "output", "o", "", "edge file (default graph_<n>_<k>_<c>.csv)")
	f.BoolVar(&flags.frames, "frames", false, "write a frames document for animation")
	f.StringVar(&flags.framesOutput, "frames-output", "", "frames document (default figure_<n>_<k>_<c>.json)")
	f.StringVar(&flags.metricsOutput, "metrics-output", "", "Prometheus textfile with run metrics")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, root *rootFlags, flags *simulateFlags) (config.Run, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Run{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("nodes") {
		cfg.Nodes = flags.nodes
	}
	if changed("iterations") {
		cfg.Iterations = flags.iterations
	}
	if changed("c") {
		cfg.C = flags.c
	}
	if changed("seed") {
		cfg.Seed = flags.seed
	}
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("frames") {
		cfg.Frames = flags.frames
	}
	if changed("frames-output") {
		cfg.FramesPath = flags.framesOutput
		cfg.Frames = true
	}
	if changed("metrics-output") {
		cfg.MetricsPath = flags.metricsOutput
	}
	if root.logLevel != "" {
		cfg.LogLevel = root.logLevel
	}
	if root.dev {
		cfg.Dev = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Run{}, err
	}

	return cfg, nil
}

func runSimulate(cmd *cobra.Command, log *zap.Logger, cfg config.Run) error {
	runID := uuid.NewString()
	runLog := log.With(zap.String("run_id", runID))
	src := rand.NewPCG(cfg.Seed, cfg.Seed)

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSource(src),
			builder.WithSeedEdgeRange(cfg.SeedEdges.Min, cfg.SeedEdges.Max),
		},
		builder.Initializer(cfg.Nodes),
	)
	if err != nil {
		return err
	}
	runLog.Info("graph initialized", zap.Int("nodes", g.NodeCount()), zap.Int("edges", g.EdgeCount()))

	var (
		doc      *frames.Document
		recorder *frames.Recorder
	)
	opts := []growth.Option{
		growth.WithSource(src),
		growth.WithLogger(log),
		growth.WithRunID(runID),
	}
	if cfg.Frames {
		pos, err := frames.Layout(g, frames.LayoutOptions{
			Repulsion: cfg.Layout.Repulsion,
			Rate:      cfg.Layout.Rate,
			Updates:   cfg.Layout.Updates,
			Theta:     cfg.Layout.Theta,
			Seed:      cfg.Seed,
		})
		if err != nil {
			return err
		}
		doc = frames.NewDocument(runID, g, pos)
		recorder = frames.NewRecorder(g)
		opts = append(opts, growth.WithObserver(recorder))
	}
	var collector *telemetry.Collector
	if cfg.MetricsPath != "" {
		collector = telemetry.NewCollector(telemetry.DefaultNamespace, runID)
		opts = append(opts, growth.WithObserver(collector))
	}

	if _, err = growth.NewEngine(opts...).Run(g, cfg.Iterations, cfg.C); err != nil {
		return err
	}

	r, err := metrics.Compute(g)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printReport(out, r)
	printGraphLine(out, r.Nodes, r.Edges)

	return saveArtifacts(cmd, runLog, cfg, g, r, doc, recorder, collector)
}

func saveArtifacts(
	cmd *cobra.Command,
	log *zap.Logger,
	cfg config.Run,
	g *core.Graph,
	r *metrics.Report,
	doc *frames.Document,
	recorder *frames.Recorder,
	collector *telemetry.Collector,
) error {
	out := cmd.OutOrStdout()

	path := cfg.Output
	if path == "" {
		path = persist.FileName(cfg.Nodes, cfg.Iterations, cfg.C)
	}
	if err := persist.Save(path, g, r); err != nil {
		return err
	}
	log.Info("graph saved", zap.String("path", path))
	fmt.Fprintf(out, "Saved graph to %s\n", path)

	if doc != nil {
		framesPath := cfg.FramesPath
		if framesPath == "" {
			framesPath = frames.FileName(cfg.Nodes, cfg.Iterations, cfg.C)
		}
		if err := doc.WithFrames(recorder.Frames()).Save(framesPath); err != nil {
			return err
		}
		log.Info("frames saved", zap.String("path", framesPath), zap.Int("frames", len(doc.Frames)))
		fmt.Fprintf(out, "Saved frames to %s\n", framesPath)
	}

	if collector != nil {
		if err := collector.ObserveReport(r); err != nil {
			return err
		}
		if err := collector.WriteTextfile(cfg.MetricsPath); err != nil {
			return err
		}
		log.Info("metrics saved", zap.String("path", cfg.MetricsPath))
	}

	return nil
}
