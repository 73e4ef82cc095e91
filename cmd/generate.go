// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/benchsort/internal/dataset"
)

func newGenerateCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Write input tables of increasing size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			seed := cfg.Seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			g := dataset.NewGenerator(seed)
			slog.Debug("generating tables", slog.Uint64("seed", seed), slog.String("dir", cfg.DataDir))
			for _, n := range dataset.Sizes(cfg.StartSize, cfg.Step, cfg.Count) {
				path := filepath.Join(cfg.DataDir, dataset.FileName(n))
				if err := dataset.Save(path, g.Generate(n)); err != nil {
					return err
				}
				slog.Info("wrote table", slog.String("file", path), slog.Int("size", n))
			}
			return nil
		},
	}
	fs := c.Flags()
	fs.Int("start", 0, "rows in the smallest table (default 100)")
	fs.Int("step", 0, "rows added to each following table (default 12000)")
	fs.Int("count", 0, "number of tables (default 10)")
	fs.Uint64("seed", 0, "random seed, 0 for a time based seed")
	bindFlags(a.v, fs, map[string]string{
		"start_size": "start",
		"step":       "step",
		"count":      "count",
		"seed":       "seed",
	})
	return c
}
