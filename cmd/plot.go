// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/benchsort/internal/bench"
	"github.com/jonlawlor/benchsort/internal/chart"
)

func newPlotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plot [timings.txt]",
		Short: "Draw the charts from a timing log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(a.cfg.OutputDir, timingsFile)
			if len(args) == 1 {
				path = args[0]
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			series, err := bench.ReadTimings(f)
			if err != nil {
				return err
			}
			written, err := chart.Render(series, a.cfg.PlotDir)
			for _, p := range written {
				slog.Info("wrote chart", slog.String("file", p))
			}
			return err
		},
	}
}
