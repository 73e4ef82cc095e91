// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench times a single sort of a dataset and collects the results.
//
// Only the sort call is timed.  Loading and writing datasets is left to the
// caller so measurements stay comparable across algorithms and sizes.
package bench

import (
	"slices"
	"time"

	"github.com/jonlawlor/benchsort/internal/record"
	"github.com/jonlawlor/benchsort/internal/sorting"
)

// Result is one timing sample.
type Result struct {
	Algorithm sorting.Algorithm
	Size      int
	Elapsed   time.Duration
}

// Seconds is the elapsed wall clock time in seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Runner sorts datasets with a fixed merge tie policy.
type Runner struct {
	Tie sorting.Tie
}

// Run sorts a copy of dataset with alg and reports how long the sort took.
// The dataset itself is not modified.  A panic raised while sorting is not
// recovered.
func (rn Runner) Run(dataset []record.Record, alg sorting.Algorithm) ([]record.Record, Result, error) {
	sortFunc, err := sorting.Func(alg, rn.Tie)
	if err != nil {
		return nil, Result{}, err
	}
	work := slices.Clone(dataset)

	start := time.Now()
	sorted := sortFunc(work)
	elapsed := time.Since(start)

	return sorted, Result{Algorithm: alg, Size: len(dataset), Elapsed: elapsed}, nil
}

// Run is Runner{}.Run: merge sort takes the right head on ties.
func Run(dataset []record.Record, alg sorting.Algorithm) ([]record.Record, Result, error) {
	return Runner{}.Run(dataset, alg)
}

// Series is an ordered collection of results.
type Series []Result

// Filter returns the results for alg, in the order they were collected.
func (s Series) Filter(alg sorting.Algorithm) Series {
	var out Series
	for _, r := range s {
		if r.Algorithm == alg {
			out = append(out, r)
		}
	}
	return out
}

// Algorithms returns the distinct algorithms in s in first-seen order.
func (s Series) Algorithms() []sorting.Algorithm {
	var algs []sorting.Algorithm
	for _, r := range s {
		if !slices.Contains(algs, r.Algorithm) {
			algs = append(algs, r.Algorithm)
		}
	}
	return algs
}

// Sort orders s by algorithm and then size.
func (s Series) Sort() {
	slices.SortStableFunc(s, func(a, b Result) int {
		if a.Algorithm != b.Algorithm {
			return int(a.Algorithm) - int(b.Algorithm)
		}
		return a.Size - b.Size
	})
}
