// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "github.com/jonlawlor/benchsort/internal/record"

// InsertionSort sorts s in place and returns it.  It is stable.
func InsertionSort(s []record.Record) []record.Record {
	insertion(s, record.Compare, nil)
	return s
}

func insertion(s []record.Record, cmp compareFunc, st *Stats) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		// only shift strictly greater elements, which keeps equal ones in order
		for j >= 0 && cmp(s[j], key) == record.Greater {
			s[j+1] = s[j]
			j--
			if st != nil {
				st.Moves++
			}
		}
		s[j+1] = key
	}
}
