// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "github.com/jonlawlor/benchsort/internal/record"

// Tie decides which head the merge step takes when both heads compare Equal.
type Tie int

const (
	// TieRight takes the head of the right half, so equal records come out
	// in reverse input order.  It is the default.
	TieRight Tie = iota
	// TieLeft takes the head of the left half, which makes the merge stable.
	TieLeft
)

func (t Tie) String() string {
	if t == TieLeft {
		return "left"
	}
	return "right"
}

// MergeSort returns a sorted copy of s using TieRight.
func MergeSort(s []record.Record) []record.Record {
	return mergeSort(s, TieRight, record.Compare, nil)
}

// MergeWith returns a sorted copy of s, breaking ties as given.
func MergeWith(s []record.Record, tie Tie) []record.Record {
	return mergeSort(s, tie, record.Compare, nil)
}

// mergeSort copies s and sorts the copy top down.  A single scratch slice of
// len(s) is shared by every level of the recursion.
func mergeSort(s []record.Record, tie Tie, cmp compareFunc, st *Stats) []record.Record {
	out := make([]record.Record, len(s))
	copy(out, s)
	if len(out) <= 1 {
		return out
	}
	aux := make([]record.Record, len(s))
	mergeSortRange(out, aux, tie, cmp, st)
	return out
}

func mergeSortRange(s, aux []record.Record, tie Tie, cmp compareFunc, st *Stats) {
	if len(s) <= 1 {
		return
	}
	// the lower half gets the extra element
	mid := (len(s) + 1) / 2
	mergeSortRange(s[:mid], aux[:mid], tie, cmp, st)
	mergeSortRange(s[mid:], aux[mid:], tie, cmp, st)
	copy(aux, s)
	merge(s, aux[:mid], aux[mid:len(s)], tie, cmp, st)
}

// merge writes the merge of left and right into dst, which must have room
// for both.
func merge(dst, left, right []record.Record, tie Tie, cmp compareFunc, st *Stats) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		c := cmp(left[i], right[j])
		if c == record.Less || (c == record.Equal && tie == TieLeft) {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	k += copy(dst[k:], right[j:])
	if st != nil {
		st.Moves += int64(k)
	}
}
