// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/jonlawlor/benchsort/internal/bench"
	"github.com/jonlawlor/benchsort/internal/sorting"
)

// Growth is a candidate running time model a*g(N) + b.
type Growth struct {
	Name string // as in "O(n^2)"
	Term string // g(N) as an expression
}

// Growths are the models Classify chooses between.
var Growths = []Growth{
	{"O(n)", "N"},
	{"O(nlogn)", "N * math.Log(N)"},
	{"O(n^2)", "N * N"},
}

// Expected is the growth each algorithm should show on random input.
var Expected = map[sorting.Algorithm]string{
	sorting.Insertion: "O(n^2)",
	sorting.Cocktail:  "O(n^2)",
	sorting.Merge:     "O(nlogn)",
}

// Classification is the best fitting Growth for one algorithm.
type Classification struct {
	Algorithm sorting.Algorithm
	Growth    Growth
	Result    Result
}

// Classify fits every Growth to each algorithm's timings and keeps the one
// with the largest R^2.  Every model fits two points exactly, so algorithms
// with fewer than three distinct sizes are left out.  The result follows the order of series.Algorithms.
func Classify(series bench.Series) ([]Classification, error) {
	vars := map[string]struct{}{"N": {}, "Y": {}}
	yExpr, err := ParseExpr("Y", vars)
	if err != nil {
		return nil, err
	}
	var out []Classification
	for _, alg := range series.Algorithms() {
		s := series.Filter(alg)
		if distinctSizes(s) < 3 {
			continue
		}
		best := Classification{Algorithm: alg, Result: Result{R2: math.Inf(-1)}}
		for _, g := range Growths {
			terms, err := ParseTerms(g.Term+", 1.0", vars)
			if err != nil {
				return nil, fmt.Errorf("growth %s: %w", g.Name, err)
			}
			sample := FromSeries(s, terms, yExpr)[alg.String()]
			m, err := Estimate(sample)
			if err != nil {
				continue
			}
			r2, cint, err := Stats(m, sample)
			if err != nil {
				continue
			}
			if r2 > best.Result.R2 {
				best.Growth = g
				best.Result = Result{Model: m, R2: r2, CI95: cint}
			}
		}
		if best.Result.Model != nil {
			out = append(out, best)
		}
	}
	return out, nil
}

func distinctSizes(s bench.Series) int {
	seen := make(map[int]struct{})
	for _, r := range s {
		seen[r.Size] = struct{}{}
	}
	return len(seen)
}
