// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"bytes"
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/benchmark/parse"

	"github.com/jonlawlor/benchsort/internal/bench"
	"github.com/jonlawlor/benchsort/internal/sorting"
)

const sortBench = `
PASS
BenchmarkSort10-4      	 2000000	       981 ns/op
BenchmarkSort100-4     	  200000	      9967 ns/op
BenchmarkSort1000-4    	   10000	    180906 ns/op
BenchmarkSort10000-4   	    1000	   2269930 ns/op
BenchmarkSort100000-4  	      50	  29891719 ns/op
BenchmarkSort1000000-4 	       3	 351179975 ns/op
BenchmarkSort10000000-4	       1	4274436193 ns/op
ok  	github.com/jonlawlor/benchlm	149.108s
`

func TestFit(t *testing.T) {
	set, err := parse.ParseSet(strings.NewReader(sortBench))
	require.NoError(t, err)
	inre := regexp.MustCompile(`(?P<N>\d+)-\d+$`)
	names := NamedVars(inre)

	// Sort isn't O(n) obviously, but this was easy to verify.
	wantFit := []float64{428.2534163147418, -1.4343020792698523e+07}

	xTerms, err := ParseTerms("N, 1.0", names)
	require.NoError(t, err)
	names["Y"] = struct{}{}
	yExpr, err := ParseExpr("Y", names)
	require.NoError(t, err)

	groups, err := Group(set, inre, xTerms, yExpr, "NsPerOp")
	require.NoError(t, err)
	require.Contains(t, groups, "BenchmarkSort")

	s := groups["BenchmarkSort"]
	m, err := Estimate(s)
	require.NoError(t, err)
	for i, f := range m {
		assert.InEpsilon(t, wantFit[i], f, 1e-6, "fit[%d]", i)
	}
	r2, cint, err := Stats(m, s)
	require.NoError(t, err)
	assert.True(t, r2 >= .999 && r2 <= 1.0, "r2 = %f", r2)
	require.Len(t, cint, 2)
	assert.Positive(t, cint[0])
}

func TestGroupUnknownResponse(t *testing.T) {
	set, err := parse.ParseSet(strings.NewReader(sortBench))
	require.NoError(t, err)
	inre := regexp.MustCompile(`(?P<N>\d+)-\d+$`)
	names := NamedVars(inre)
	xTerms, err := ParseTerms("N", names)
	require.NoError(t, err)
	names["Y"] = struct{}{}
	yExpr, err := ParseExpr("Y", names)
	require.NoError(t, err)

	_, err = Group(set, inre, xTerms, yExpr, "Bogus")
	require.Error(t, err)
}

func TestEstimateErrors(t *testing.T) {
	_, err := Estimate(&Sample{})
	require.ErrorIs(t, err, ErrTooFewSamples)

	_, err = Estimate(&Sample{X: []float64{1, 1, 2, 2}, Y: []float64{1}})
	require.ErrorIs(t, err, ErrTooFewSamples)

	// the second column is all zero
	_, err = Estimate(&Sample{X: []float64{1, 0, 2, 0, 3, 0}, Y: []float64{1, 2, 3}})
	require.ErrorIs(t, err, ErrSingular)
}

func TestStatsExact(t *testing.T) {
	s := &Sample{X: []float64{1, 1, 2, 1}, Y: []float64{3, 5}}
	m, err := Estimate(s)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m[0], 1e-9)
	assert.InDelta(t, 1.0, m[1], 1e-9)

	r2, cint, err := Stats(m, s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-12)
	assert.True(t, math.IsNaN(cint[0]))
}

// quadratic returns timings that grow as c*n^2.
func quadratic(alg sorting.Algorithm, c float64) bench.Series {
	var s bench.Series
	for _, n := range []int{100, 12100, 24100, 36100, 48100, 60100} {
		secs := c * float64(n) * float64(n)
		s = append(s, bench.Result{Algorithm: alg, Size: n, Elapsed: time.Duration(secs * float64(time.Second))})
	}
	return s
}

func linearithmic(alg sorting.Algorithm, c float64) bench.Series {
	var s bench.Series
	for _, n := range []int{100, 12100, 24100, 36100, 48100, 60100} {
		secs := c * float64(n) * math.Log(float64(n))
		s = append(s, bench.Result{Algorithm: alg, Size: n, Elapsed: time.Duration(secs * float64(time.Second))})
	}
	return s
}

func TestClassify(t *testing.T) {
	series := append(quadratic(sorting.Insertion, 1e-9), linearithmic(sorting.Merge, 1e-7)...)
	series = append(series, bench.Result{Algorithm: sorting.Cocktail, Size: 10, Elapsed: time.Millisecond})

	cs, err := Classify(series)
	require.NoError(t, err)
	require.Len(t, cs, 2)

	assert.Equal(t, sorting.Insertion, cs[0].Algorithm)
	assert.Equal(t, "O(n^2)", cs[0].Growth.Name)
	assert.InEpsilon(t, 1e-9, cs[0].Result.Model[0], 1e-3)

	assert.Equal(t, sorting.Merge, cs[1].Algorithm)
	assert.Equal(t, "O(nlogn)", cs[1].Growth.Name)

	var buf bytes.Buffer
	require.NoError(t, WriteClassification(&buf, cs))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "insertion"))
	assert.Contains(t, lines[2], "O(nlogn)")
}

func TestFromSeries(t *testing.T) {
	vars := map[string]struct{}{"N": {}, "Y": {}}
	xTerms, err := ParseTerms("N * N, 1.0", vars)
	require.NoError(t, err)
	yExpr, err := ParseExpr("Y", vars)
	require.NoError(t, err)

	groups := FromSeries(quadratic(sorting.Cocktail, 2e-9), xTerms, yExpr)
	require.Contains(t, groups, "cocktail")
	fits := Fit(groups)
	assert.InEpsilon(t, 2e-9, fits["cocktail"].Model[0], 1e-3)
}

func TestWriteReport(t *testing.T) {
	vars := map[string]struct{}{"N": {}, "Y": {}}
	xTerms, err := ParseTerms("N, 1.0", vars)
	require.NoError(t, err)
	yExpr, err := ParseExpr("Y", vars)
	require.NoError(t, err)

	fits := map[string]Result{
		"BenchmarkB": {Model: Model{2.5, 100}, R2: 0.99, CI95: []float64{0.01, 1000}},
		"BenchmarkA": {},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, xTerms, yExpr, fits, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `group \ Y ~`))
	assert.True(t, strings.HasPrefix(lines[1], "BenchmarkA"))
	assert.Contains(t, lines[1], "~")
	assert.Contains(t, lines[2], "2.500e+00±1.0e-02")
	assert.Contains(t, lines[2], "1.0e+02±1.0e+03")
	assert.Contains(t, lines[2], "0.99")

	buf.Reset()
	require.NoError(t, WriteReport(&buf, xTerms, yExpr, fits, true))
	assert.Contains(t, buf.String(), "<th>R^2</th>")
	assert.Contains(t, buf.String(), "<td>BenchmarkB</td>")
}
