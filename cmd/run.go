// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/benchsort/internal/bench"
	"github.com/jonlawlor/benchsort/internal/chart"
	"github.com/jonlawlor/benchsort/internal/config"
	"github.com/jonlawlor/benchsort/internal/dataset"
	"github.com/jonlawlor/benchsort/internal/fit"
)

const (
	timingsFile  = "timings.txt"
	manifestFile = "manifest.yaml"
)

func newRunCmd(a *app) *cobra.Command {
	var noPlot bool
	c := &cobra.Command{
		Use:   "run",
		Short: "Sort every input table with every algorithm and report the timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := runAll(a.cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !noPlot {
				if _, err := chart.Render(series, a.cfg.PlotDir); err != nil {
					return err
				}
			}
			return report(cmd.OutOrStdout(), series)
		},
	}
	fs := c.Flags()
	fs.StringSlice("algorithms", nil, "algorithms to run (default insertion,cocktail,merge)")
	fs.String("merge-tie", "", `head merge sort takes on equal keys, "right" or "left" (default "right")`)
	fs.BoolVar(&noPlot, "no-plot", false, "skip drawing the charts")
	bindFlags(a.v, fs, map[string]string{
		"algorithms": "algorithms",
		"merge_tie":  "merge-tie",
	})
	return c
}

// runAll sorts each table with each algorithm, one algorithm at a time, and
// writes the sorted tables, the timing log and the manifest.
func runAll(cfg config.Config, progress io.Writer) (bench.Series, error) {
	sizes, err := dataset.ListSizes(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no input tables in %s, run generate first", cfg.DataDir)
	}
	slog.Debug("found tables", slog.Any("sizes", sizes))

	runner := bench.Runner{Tie: cfg.Tie()}
	manifest := bench.NewManifest(runner.Tie, cfg.Seed)
	var series bench.Series
	for _, alg := range cfg.Sorts() {
		for _, n := range sizes {
			in := filepath.Join(cfg.DataDir, dataset.FileName(n))
			recs, err := dataset.Load(in)
			if err != nil {
				return nil, err
			}
			sorted, res, err := runner.Run(recs, alg)
			if err != nil {
				return nil, err
			}
			out := filepath.Join(dataset.OutputDir(cfg.OutputDir, alg), dataset.FileName(n))
			if err := dataset.Save(out, sorted); err != nil {
				return nil, err
			}
			fmt.Fprintf(progress, "%s sorted in %g seconds using %s_sort\n", in, res.Seconds(), alg)
			slog.Info("sorted table",
				slog.String("algorithm", alg.String()),
				slog.Int("size", res.Size),
				slog.Duration("elapsed", res.Elapsed),
				slog.String("file", out))
			series = append(series, res)
			manifest.Add(res, out)
		}
	}

	if err := writeFile(filepath.Join(cfg.OutputDir, timingsFile), func(w io.Writer) error {
		return bench.WriteTimings(w, series)
	}); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(cfg.OutputDir, manifestFile), func(w io.Writer) error {
		return bench.WriteManifest(w, manifest)
	}); err != nil {
		return nil, err
	}
	slog.Info("run complete", slog.String("run_id", manifest.RunID), slog.Int("samples", len(series)))
	return series, nil
}

// report prints the growth model that best fits each algorithm.
func report(w io.Writer, series bench.Series) error {
	cs, err := fit.Classify(series)
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		slog.Warn("not enough sizes to fit a growth model")
		return nil
	}
	fmt.Fprintln(w)
	return fit.WriteClassification(w, cs)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
