// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorting implements the three sorts that are benchmarked:
// insertion sort, cocktail sort and merge sort.  Each one orders Records by
// record.Compare and returns the sorted slice.
//
// Insertion and Cocktail sort the slice they are given in place.  Merge
// leaves its input untouched and returns a new slice.
package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonlawlor/benchsort/internal/record"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for names it does not know.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm selects one of the sorts.
type Algorithm int

const (
	Insertion Algorithm = iota
	Cocktail
	Merge
)

// Algorithms lists every Algorithm in benchmark order.
var Algorithms = []Algorithm{Insertion, Cocktail, Merge}

var names = [...]string{
	Insertion: "insertion",
	Cocktail:  "cocktail",
	Merge:     "merge",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

// ParseAlgorithm is the inverse of Algorithm.String.  It also accepts
// the "_sort" suffix, as in "merge_sort".
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_sort")
	for i, n := range names {
		if n == s {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Stats counts the work done by a sort.  Moves counts element writes:
// a shift in insertion sort, a swap in cocktail sort and a write into the
// merged output in merge sort.
type Stats struct {
	Comparisons int64
	Moves       int64
}

// compareFunc is the comparison the algorithms are written against, so that
// SortCounted can instrument them.
type compareFunc func(a, b record.Record) record.Ordering

// Sort sorts s with the named algorithm.  Merge uses TieRight.
func Sort(alg Algorithm, s []record.Record) []record.Record {
	return sortWith(alg, s, record.Compare, nil)
}

// SortCounted is like Sort but also reports how many comparisons and moves
// were made.
func SortCounted(alg Algorithm, s []record.Record) ([]record.Record, Stats) {
	var st Stats
	cmp := func(a, b record.Record) record.Ordering {
		st.Comparisons++
		return record.Compare(a, b)
	}
	out := sortWith(alg, s, cmp, &st)
	return out, st
}

func sortWith(alg Algorithm, s []record.Record, cmp compareFunc, st *Stats) []record.Record {
	switch alg {
	case Insertion:
		insertion(s, cmp, st)
		return s
	case Cocktail:
		cocktail(s, cmp, st)
		return s
	case Merge:
		return mergeSort(s, TieRight, cmp, st)
	}
	panic("sorting: unknown algorithm " + alg.String())
}

// Func returns the sort function for alg.  tie only affects Merge.
func Func(alg Algorithm, tie Tie) (func([]record.Record) []record.Record, error) {
	switch alg {
	case Insertion:
		return InsertionSort, nil
	case Cocktail:
		return CocktailSort, nil
	case Merge:
		return func(s []record.Record) []record.Record { return MergeWith(s, tie) }, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
}

// ParseTie parses "left" or "right".
func ParseTie(s string) (Tie, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return TieRight, nil
	case "left":
		return TieLeft, nil
	}
	return TieRight, fmt.Errorf("sorting: unknown merge tie policy %q", s)
}
