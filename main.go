// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// benchsort measures how the running time of insertion sort, cocktail sort
// and merge sort grows with the number of records sorted.
//
// Usage:
//
//	benchsort generate   # write files/file100.csv, files/file12100.csv, ...
//	benchsort run        # sort them, write folder_<algorithm>_sort/, timings and charts
//	benchsort fit timings.txt
//
// Records are ordered by division, then full name, then salary.  The run
// command prints one line per sort, for example
//
//	files/file12100.csv sorted in 1.8 seconds using insertion_sort
//
// and finishes with the growth model that best fits each algorithm:
//
//	algorithm  growth    expected  coefficient        R^2
//	insertion  O(n^2)    O(n^2)    1.24e-08±3.1e-10   0.999811
//	cocktail   O(n^2)    O(n^2)    3.05e-08±4.4e-10   0.999902
//	merge      O(nlogn)  O(nlogn)  1.9e-08±2.2e-09    0.998127
//
// The timing log uses the ``go test -bench'' format, so it can also be fit
// against any model with the fit command, which works like benchls:
//
//	$ benchsort fit -xt="N * N, 1.0" timings.txt
//	group \ Y ~          N * N              1.0             R^2
//	BenchmarkCocktail    3.05e+01±4.4e-01   -3e+07±1.8e+08  0.9999
//	BenchmarkInsertion   1.24e+01±3.1e-01   2e+07±1.3e+08   0.9998
//	BenchmarkMerge       6.5e-03±1.7e-03    8e+06±6.9e+06   0.8762
//
// Settings come from flags, BENCHSORT_* environment variables, or a
// benchsort.yaml file in the working directory.
package main

import "github.com/jonlawlor/benchsort/cmd"

func main() {
	cmd.Execute()
}
