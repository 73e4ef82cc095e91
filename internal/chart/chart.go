// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws running time against dataset size.
package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jonlawlor/benchsort/internal/bench"
	"github.com/jonlawlor/benchsort/internal/sorting"
)

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

var titles = map[sorting.Algorithm]string{
	sorting.Insertion: "Insertion Sort O(n^2)",
	sorting.Cocktail:  "Cocktail Sort O(n^2)",
	sorting.Merge:     "Merge Sort O(nlogn)",
}

var labels = map[sorting.Algorithm]string{
	sorting.Insertion: "Insertion Sort",
	sorting.Cocktail:  "Cocktail Sort",
	sorting.Merge:     "Merge Sort",
}

// FileName is the name of the single algorithm chart.
func FileName(alg sorting.Algorithm) string {
	return alg.String() + "_sort.png"
}

// AllFileName is the name of the chart with every algorithm on it.
const AllFileName = "plot_all.png"

func points(s bench.Series) plotter.XYs {
	s = append(bench.Series(nil), s...)
	s.Sort()
	pts := make(plotter.XYs, len(s))
	for i, r := range s {
		pts[i].X = float64(r.Size)
		pts[i].Y = r.Seconds()
	}
	return pts
}

// Algorithm draws one algorithm's timings.
func Algorithm(series bench.Series, alg sorting.Algorithm) (*plot.Plot, error) {
	s := series.Filter(alg)
	if len(s) == 0 {
		return nil, fmt.Errorf("chart: no timings for %s", alg)
	}
	p := plot.New()
	p.Title.Text = titles[alg]
	p.X.Label.Text = "Size"
	p.Y.Label.Text = "Running time (seconds)"
	if err := plotutil.AddLinePoints(p, points(s)); err != nil {
		return nil, err
	}
	return p, nil
}

// All draws every algorithm in series with a legend.
func All(series bench.Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("chart: no timings")
	}
	p := plot.New()
	p.X.Label.Text = "Size of file (strings)"
	p.Y.Label.Text = "Time (seconds)"
	p.Legend.Top = true
	p.Legend.Left = true

	var lines []any
	for _, alg := range series.Algorithms() {
		lines = append(lines, labels[alg], points(series.Filter(alg)))
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// Render writes one PNG per algorithm and the combined PNG into dir, and
// returns the paths written.
func Render(series bench.Series, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	save := func(p *plot.Plot, name string) error {
		path := filepath.Join(dir, name)
		if err := p.Save(width, height, path); err != nil {
			return fmt.Errorf("chart: saving %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}
	for _, alg := range series.Algorithms() {
		p, err := Algorithm(series, alg)
		if err != nil {
			return written, err
		}
		if err := save(p, FileName(alg)); err != nil {
			return written, err
		}
	}
	p, err := All(series)
	if err != nil {
		return written, err
	}
	return written, save(p, AllFileName)
}
