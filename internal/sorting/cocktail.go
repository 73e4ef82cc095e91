// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "github.com/jonlawlor/benchsort/internal/record"

// CocktailSort sorts s in place with a bidirectional bubble sort and
// returns it.  It is stable, and stops as soon as a sweep makes no swaps.
func CocktailSort(s []record.Record) []record.Record {
	cocktail(s, record.Compare, nil)
	return s
}

func cocktail(s []record.Record, cmp compareFunc, st *Stats) {
	start, end := 0, len(s)-1
	for start < end {
		// left to right: the largest element in the window ends up at end
		swapped := false
		for i := start; i < end; i++ {
			if cmp(s[i], s[i+1]) == record.Greater {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
				if st != nil {
					st.Moves++
				}
			}
		}
		if !swapped {
			return
		}
		end--

		// right to left: the smallest element in the window ends up at start
		swapped = false
		for i := end - 1; i >= start; i-- {
			if cmp(s[i], s[i+1]) == record.Greater {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
				if st != nil {
					st.Moves++
				}
			}
		}
		if !swapped {
			return
		}
		start++
	}
}
