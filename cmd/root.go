// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd holds the benchsort command line.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonlawlor/benchsort/internal/config"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// NewRootCmd builds the benchsort command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "benchsort",
		Short: "Benchmark insertion, cocktail and merge sort on generated tables",
		Long: `benchsort generates tables of employee records of increasing size, sorts
each one by division, name and salary with insertion sort, cocktail sort and
merge sort, and reports how the running time grows with the size.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			setupLogging(cmd, cfg.Debug)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("data-dir", "", "directory holding the input tables (default \"files\")")
	pf.String("output-dir", "", "directory for sorted tables, timings and the manifest (default \".\")")
	pf.String("plot-dir", "", "directory for the charts (default \".\")")
	pf.Bool("debug", false, "enable debug logging")
	bindFlags(a.v, pf, map[string]string{
		"data_dir":   "data-dir",
		"output_dir": "output-dir",
		"plot_dir":   "plot-dir",
		"debug":      "debug",
	})

	root.AddCommand(
		newGenerateCmd(a),
		newRunCmd(a),
		newFitCmd(),
		newPlotCmd(a),
	)
	return root
}

// setupLogging installs a text slog handler on stderr so that stdout only
// carries results.
func setupLogging(cmd *cobra.Command, debug bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug || os.Getenv("DEBUG") != "" {
		opts.Level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts)).With(
		slog.String("command", cmd.Name()),
	))
}

// Execute runs the root command.  It is called by main.main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
