// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit computes least squares fits of running time against input size.
//
// Samples come either from benchmark output (``go test -bench'' text, or the
// timing log written by the run command) or directly from a bench.Series.
// Each explanatory variable is a Go expression over named input variables,
// and the response is an expression over Y, the measured value.
package fit

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/benchmark/parse"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jonlawlor/benchsort/internal/bench"
)

var (
	// ErrSingular is returned when the explanatory variables are not independent.
	ErrSingular = errors.New("fit: explanatory variables are linearly dependent")
	// ErrTooFewSamples is returned when there are fewer samples than terms.
	ErrTooFewSamples = errors.New("fit: fewer samples than terms")
)

// Responses are the benchmark fields that can be used as Y.
var Responses = []string{"NsPerOp", "AllocedBytesPerOp", "AllocsPerOp", "MBPerS"}

// Sample holds the rows of a regression.  X is row major with one row per
// element of Y.
type Sample struct {
	X []float64
	Y []float64
}

// cols is the number of explanatory variables.
func (s *Sample) cols() int {
	if len(s.Y) == 0 {
		return 0
	}
	return len(s.X) / len(s.Y)
}

func (s *Sample) add(x []float64, y float64) {
	s.X = append(s.X, x...)
	s.Y = append(s.Y, y)
}

// Model holds one coefficient per explanatory variable.
type Model []float64

// Result is a fitted model with its goodness of fit.
type Result struct {
	Model Model
	R2    float64
	// CI95 is the half width of the 95% confidence interval of each
	// coefficient.  It is NaN when there are no residual degrees of freedom.
	CI95 []float64
}

func evalRow(terms []*Expr, vars map[string]float64) []float64 {
	x := make([]float64, len(terms))
	for i, t := range terms {
		x[i] = t.Eval(vars)
	}
	return x
}

// Group collects samples from a benchmark set.  inre finds the named input
// variables in each benchmark name, and everything in front of the match is
// the group name.  Benchmarks that do not match are ignored.
func Group(set parse.Set, inre *regexp.Regexp, xTerms []*Expr, yExpr *Expr, response string) (map[string]*Sample, error) {
	groups := make(map[string]*Sample)
	names := inre.SubexpNames()
Bench:
	for name, bs := range set {
		input := inre.FindStringSubmatch(name)
		if input == nil {
			continue
		}
		group := strings.TrimSuffix(name, input[0])

		vars := make(map[string]float64)
		for i, v := range names {
			if i == 0 || v == "" {
				continue
			}
			val, err := strconv.ParseFloat(input[i], 64)
			if err != nil {
				// a capture that isn't a number can't be fit
				continue Bench
			}
			vars[v] = val
		}
		x := evalRow(xTerms, vars)

		s := groups[group]
		if s == nil {
			s = &Sample{}
			groups[group] = s
		}
		for _, b := range bs {
			switch response {
			case "NsPerOp":
				vars["Y"] = b.NsPerOp
			case "AllocedBytesPerOp":
				vars["Y"] = float64(b.AllocedBytesPerOp)
			case "AllocsPerOp":
				vars["Y"] = float64(b.AllocsPerOp)
			case "MBPerS":
				vars["Y"] = b.MBPerS
			default:
				return nil, fmt.Errorf("fit: unknown response %q", response)
			}
			s.add(x, yExpr.Eval(vars))
		}
	}
	return groups, nil
}

// FromSeries collects one sample per algorithm.  The input variable is N,
// the dataset size, and Y is the elapsed time in seconds.
func FromSeries(series bench.Series, xTerms []*Expr, yExpr *Expr) map[string]*Sample {
	groups := make(map[string]*Sample)
	for _, r := range series {
		vars := map[string]float64{"N": float64(r.Size), "Y": r.Seconds()}
		s := groups[r.Algorithm.String()]
		if s == nil {
			s = &Sample{}
			groups[r.Algorithm.String()] = s
		}
		s.add(evalRow(xTerms, vars), yExpr.Eval(vars))
	}
	return groups
}

// Estimate finds the least squares coefficients for s.
func Estimate(s *Sample) (Model, error) {
	rows, cols := len(s.Y), s.cols()
	if cols == 0 || rows < cols {
		return nil, ErrTooFewSamples
	}
	y := blas64.General{
		Rows:   rows,
		Cols:   1,
		Stride: 1,
		Data:   make([]float64, rows),
	}
	copy(y.Data, s.Y)

	x := blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, len(s.X)),
	}
	copy(x.Data, s.X)

	// find the optimal work size
	work := make([]float64, 1)
	lapack64.Gels(blas.NoTrans, x, y, work, -1)

	work = make([]float64, int(work[0]))
	if ok := lapack64.Gels(blas.NoTrans, x, y, work, len(work)); !ok {
		return nil, ErrSingular
	}
	return Model(y.Data[:cols]), nil
}

// Stats computes R^2 and the 95% confidence intervals of m on s.  R^2 is
// taken about zero rather than about the mean of Y.
func Stats(m Model, s *Sample) (r2 float64, cint []float64, err error) {
	var rss, yss float64
	stride := s.cols()
	for i, y := range s.Y {
		yss += y * y
		yHat := 0.0
		for j, x := range s.X[i*stride : (i+1)*stride] {
			yHat += m[j] * x
		}
		rss += (yHat - y) * (yHat - y)
	}
	r2 = 1.0 - rss/yss

	cint = make([]float64, stride)
	dof := len(s.Y) - stride
	if dof <= 0 {
		for i := range cint {
			cint[i] = math.NaN()
		}
		return r2, cint, nil
	}
	mse := rss / float64(dof)

	x := mat.NewDense(len(s.Y), stride, s.X)
	var xtx, inv mat.Dense
	xtx.Mul(x.T(), x)
	if err := inv.Inverse(&xtx); err != nil {
		// an ill conditioned inverse is still usable for the intervals
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return r2, nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}
	for i := range cint {
		cint[i] = conf95(math.Sqrt(inv.At(i, i)*mse), dof)
	}
	return r2, cint, nil
}

// conf95 is the half width of a two sided 95% interval for a coefficient
// with standard error se.
func conf95(se float64, dof int) float64 {
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	return t.Quantile(0.975) * se
}

// Fit estimates and scores every group.  Groups that cannot be fit map to a
// nil Model.
func Fit(groups map[string]*Sample) map[string]Result {
	out := make(map[string]Result, len(groups))
	for g, s := range groups {
		m, err := Estimate(s)
		if err != nil {
			out[g] = Result{}
			continue
		}
		r2, cint, err := Stats(m, s)
		if err != nil {
			out[g] = Result{}
			continue
		}
		out[g] = Result{Model: m, R2: r2, CI95: cint}
	}
	return out
}
