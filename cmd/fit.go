// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/tools/benchmark/parse"

	"github.com/jonlawlor/benchsort/internal/fit"
)

const fitExample = `  benchsort fit timings.txt
  benchsort fit --xt="N * N, 1.0" timings.txt
  go test -bench=. ./internal/sorting > bench.txt
  benchsort fit --xt="N * math.Log(N), 1.0" bench.txt`

func newFitCmd() *cobra.Command {
	var (
		inputMatch string
		xTransform string
		yTransform string
		response   string
		asHTML     bool
	)
	c := &cobra.Command{
		Use:   "fit bench.txt",
		Short: "Least squares fit of benchmark results against their input size",
		Long: `fit reads the timing log written by run, or the output of "go test -bench",
and fits a linear model to each group of parameterized benchmarks.  Benchmark
names are matched against --vars; its named captures become input variables,
and whatever precedes the match names the group.  The explanatory variables
are built from the inputs with --xtransform and the response from Y, the
measured value, with --ytransform.  Both are Go expressions that may use
functions from the math package.

The numbers after "±" are the half widths of the 95% confidence intervals.`,
		Example: fitExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(fit.Responses, response) {
				return fmt.Errorf("invalid response: %s", response)
			}
			inre, err := regexp.Compile(inputMatch)
			if err != nil {
				return err
			}
			vars := fit.NamedVars(inre)
			if _, exists := vars["Y"]; exists {
				return errors.New("`Y` is reserved and cannot be used as a named expression in vars")
			}
			xTerms, err := fit.ParseTerms(xTransform, vars)
			if err != nil {
				return err
			}
			vars["Y"] = struct{}{}
			yExpr, err := fit.ParseExpr(yTransform, vars)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			set, err := parse.ParseSet(f)
			if err != nil {
				return err
			}

			groups, err := fit.Group(set, inre, xTerms, yExpr, response)
			if err != nil {
				return err
			}
			return fit.WriteReport(cmd.OutOrStdout(), xTerms, yExpr, fit.Fit(groups), asHTML)
		},
	}

	fs := c.Flags()
	fs.StringVar(&inputMatch, "vars", `/n=(?P<N>\d+)(-\d+)?$`, "where to find named input variables in the benchmark names")

	const (
		defaultXTransform = "N, 1.0"
		xTransformUsage   = "how to construct the explanatory variables from the input variables, separated by commas"
	)
	fs.StringVar(&xTransform, "xtransform", defaultXTransform, xTransformUsage)
	fs.StringVar(&xTransform, "xt", defaultXTransform, xTransformUsage+" (shorthand)")

	fs.StringVar(&response, "response", "NsPerOp", `benchmark field to use as a response variable {"`+strings.Join(fit.Responses, `", "`)+`"}`)

	const (
		defaultYTransform = "Y"
		yTransformUsage   = "how to transform the response variable"
	)
	fs.StringVar(&yTransform, "ytransform", defaultYTransform, yTransformUsage)
	fs.StringVar(&yTransform, "yt", defaultYTransform, yTransformUsage+" (shorthand)")

	fs.BoolVar(&asHTML, "html", false, "print results as an HTML table")
	return c
}
