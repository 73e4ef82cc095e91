// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// report.go was adapted from benchstat, at https://github.com/rsc/benchstat
// Its license follows:

// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package fit

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

type row struct {
	cols []string
}

func newRow(cols ...string) *row {
	return &row{cols: cols}
}

// table is a heading row followed by data rows.
type table []*row

// coefficient formats b, keeping only the digits that the confidence
// interval says are significant.
func coefficient(b, cint float64) string {
	if math.IsNaN(cint) {
		return fmt.Sprintf("%.3e", b)
	}
	format := "%.1e±%.1e" // b is not significant
	if logDiff := math.Log10(math.Abs(b)) - math.Log10(cint) + 1; logDiff > 0 && !math.IsInf(logDiff, 1) {
		format = "%." + strconv.Itoa(int(logDiff)) + "e±%.1e"
	}
	return fmt.Sprintf(format, b, cint)
}

// WriteReport writes the fitted coefficients and R^2 of each group, one
// group per row in name order.  Groups that could not be fit are shown
// with placeholders.
func WriteReport(w io.Writer, xTerms []*Expr, yExpr *Expr, fits map[string]Result, asHTML bool) error {
	heading := []string{"group \\ " + yExpr.String() + " ~"}
	for _, x := range xTerms {
		heading = append(heading, x.String())
	}
	heading = append(heading, "R^2")

	groups := make([]string, 0, len(fits))
	for g := range fits {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	t := table{newRow(heading...)}
	for _, g := range groups {
		f := fits[g]
		cols := make([]string, len(xTerms)+2)
		cols[0] = g
		if f.Model == nil {
			for i := 1; i < len(cols); i++ {
				cols[i] = "~"
			}
		} else {
			for i, b := range f.Model {
				cols[i+1] = coefficient(b, f.CI95[i])
			}
			cols[len(cols)-1] = fmt.Sprintf("%g", f.R2)
		}
		t = append(t, newRow(cols...))
	}
	return t.write(w, asHTML)
}

// WriteClassification writes the best growth model found for each algorithm
// next to the one it is expected to follow.
func WriteClassification(w io.Writer, cs []Classification) error {
	t := table{newRow("algorithm", "growth", "expected", "coefficient", "R^2")}
	for _, c := range cs {
		t = append(t, newRow(
			c.Algorithm.String(),
			c.Growth.Name,
			Expected[c.Algorithm],
			coefficient(c.Result.Model[0], c.Result.CI95[0]),
			fmt.Sprintf("%.6f", c.Result.R2),
		))
	}
	return t.write(w, false)
}

func (t table) write(w io.Writer, asHTML bool) error {
	numColumn := 0
	for _, r := range t {
		if numColumn < len(r.cols) {
			numColumn = len(r.cols)
		}
	}
	max := make([]int, numColumn)
	for _, r := range t {
		for i, s := range r.cols {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	var buf bytes.Buffer
	if asHTML {
		fmt.Fprintf(&buf, "<style>.benchsort tbody td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }</style>\n")
		fmt.Fprintf(&buf, "<table class='benchsort'>\n")
		printRow := func(r *row, tag string) {
			fmt.Fprintf(&buf, "<tr>")
			for _, cell := range r.cols {
				fmt.Fprintf(&buf, "<%s>%s</%s>", tag, html.EscapeString(cell), tag)
			}
			fmt.Fprintf(&buf, "\n")
		}
		printRow(t[0], "th")
		for _, r := range t[1:] {
			printRow(r, "td")
		}
		fmt.Fprintf(&buf, "</table>\n")
	} else {
		// headings
		head := t[0]
		for i, s := range head.cols {
			switch i {
			case 0:
				fmt.Fprintf(&buf, "%-*s", max[i], s)
			default:
				fmt.Fprintf(&buf, "  %-*s", max[i], s)
			case len(head.cols) - 1:
				fmt.Fprintf(&buf, "  %s\n", s)
			}
		}

		// data
		for _, r := range t[1:] {
			for i, s := range r.cols {
				switch i {
				case 0:
					fmt.Fprintf(&buf, "%-*s", max[i], s)
				default:
					fmt.Fprintf(&buf, "  %*s", max[i], s)
				}
			}
			fmt.Fprintf(&buf, "\n")
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
