// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/tools/benchmark/parse"

	"github.com/jonlawlor/benchsort/internal/sorting"
)

// The timing log uses the ``go test -bench'' line format, one sort per line:
//
//	BenchmarkInsertion/n=12100	1	1536845042 ns/op
//
// so that it can be read by the fit command and by other benchmark tools.

// TimingVars matches the size in a timing log benchmark name.
const TimingVars = `/n=(?P<N>\d+)$`

var timingName = regexp.MustCompile(`^Benchmark(\w+)/n=(\d+)$`)

// BenchmarkName is the name a result is logged under.
func BenchmarkName(alg sorting.Algorithm, size int) string {
	s := alg.String()
	return fmt.Sprintf("Benchmark%s%s/n=%d", strings.ToUpper(s[:1]), s[1:], size)
}

// WriteTimings writes one benchmark line per result.
func WriteTimings(w io.Writer, s Series) error {
	bw := bufio.NewWriter(w)
	for _, r := range s {
		if _, err := fmt.Fprintf(bw, "%s\t1\t%d ns/op\n", BenchmarkName(r.Algorithm, r.Size), r.Elapsed.Nanoseconds()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTimings reads a timing log.  Lines that are not benchmark results, or
// that name something other than a sort, are skipped.  The results are
// returned in the order they appear.
func ReadTimings(r io.Reader) (Series, error) {
	set, err := parse.ParseSet(r)
	if err != nil {
		return nil, fmt.Errorf("reading timings: %w", err)
	}
	type ordered struct {
		ord int
		res Result
	}
	var all []ordered
	for name, bs := range set {
		m := timingName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		alg, err := sorting.ParseAlgorithm(m[1])
		if err != nil {
			continue
		}
		size, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("reading timings: bad size in %q: %w", name, err)
		}
		for _, b := range bs {
			if b.Measured&parse.NsPerOp == 0 {
				continue
			}
			all = append(all, ordered{b.Ord, Result{
				Algorithm: alg,
				Size:      size,
				Elapsed:   time.Duration(b.NsPerOp),
			}})
		}
	}
	slices.SortFunc(all, func(a, b ordered) int { return a.ord - b.ord })
	s := make(Series, len(all))
	for i, o := range all {
		s[i] = o.res
	}
	return s, nil
}
