// SPDX-License-Identifier: MIT
// Package: netgrowth/cmd/netgrowth
//
// root.go - root command, persistent flags and logger construction.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootFlags are shared by every sub-command.
type rootFlags struct {
	logLevel string
	dev      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "netgrowth",
		Short: "netgrowth - network growth simulator",
		Long: `netgrowth grows an undirected network one edge per step, choosing between
preferential attachment and Adamic-Adar link prediction, and reports the
degree distribution, largest component, diameter, average path length and
clustering coefficient of the result.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&flags.dev, "dev", false, "human-readable development logging")

	root.AddCommand(newSimulateCmd(flags), newAnalyzeCmd(flags))

	return root
}

// newLogger builds a production or development zap logger at level.
func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
