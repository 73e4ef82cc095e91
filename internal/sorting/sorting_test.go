// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonlawlor/benchsort/internal/record"
)

var sorts = []struct {
	name string
	f    func([]record.Record) []record.Record
}{
	{"insertion", InsertionSort},
	{"cocktail", CocktailSort},
	{"merge", MergeSort},
	{"merge-left", func(s []record.Record) []record.Record { return MergeWith(s, TieLeft) }},
}

// randomRecords draws from small pools so that equal keys are common.  The
// title is unique per record and records the input position.
func randomRecords(r *rand.Rand, n int) []record.Record {
	groups := []string{"Sales", "Marketing", "Finance", "Operations"}
	names := []string{"Ann", "Bob", "Cy"}
	s := make([]record.Record, n)
	for i := range s {
		s[i] = record.New(names[r.Intn(len(names))], fmt.Sprint(i), groups[r.Intn(len(groups))], int64(r.Intn(3)))
	}
	return s
}

func isSorted(s []record.Record) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1].Greater(s[i]) {
			return false
		}
	}
	return true
}

func sortedKeys(s []record.Record) []string {
	keys := make([]string, len(s))
	for i, r := range s {
		keys[i] = r.String()
	}
	slices.Sort(keys)
	return keys
}

func TestScenario(t *testing.T) {
	bob := record.New("Bob", "Mgr", "Sales", 55000)
	jane := record.New("Jane", "Asst", "Marketing", 45000)
	john := record.New("John", "Mgr", "Marketing", 50000)
	want := []record.Record{jane, john, bob}
	for _, alg := range Algorithms {
		got := Sort(alg, []record.Record{bob, jane, john})
		assert.Equal(t, want, got, alg.String())
	}
}

func TestSortsArePermutations(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 7, 64, 301} {
		in := randomRecords(r, n)
		for _, tt := range sorts {
			cp := slices.Clone(in)
			got := tt.f(cp)
			require.Len(t, got, n, "%s n=%d", tt.name, n)
			assert.True(t, isSorted(got), "%s n=%d not sorted", tt.name, n)
			assert.Equal(t, sortedKeys(in), sortedKeys(got), "%s n=%d not a permutation", tt.name, n)
		}
	}
}

func TestStability(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	in := randomRecords(r, 200)

	// position returns where each record was in the input.
	position := func(x record.Record) int {
		var p int
		fmt.Sscan(x.Title(), &p)
		return p
	}

	for _, tt := range sorts[:2] {
		got := tt.f(slices.Clone(in))
		for i := 1; i < len(got); i++ {
			if got[i-1].Equal(got[i]) {
				assert.Less(t, position(got[i-1]), position(got[i]), tt.name)
			}
		}
	}

	left := MergeWith(in, TieLeft)
	for i := 1; i < len(left); i++ {
		if left[i-1].Equal(left[i]) {
			assert.Less(t, position(left[i-1]), position(left[i]), "merge TieLeft")
		}
	}

	// taking the right head on ties reverses every run of equal records
	right := MergeSort(in)
	for i := 1; i < len(right); i++ {
		if right[i-1].Equal(right[i]) {
			assert.Greater(t, position(right[i-1]), position(right[i]), "merge TieRight")
		}
	}
}

func TestAlreadySorted(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	in := MergeWith(randomRecords(r, 150), TieLeft)
	for _, tt := range sorts {
		got := tt.f(slices.Clone(in))
		for i := range in {
			if tt.name == "merge" {
				assert.True(t, in[i].Equal(got[i]), tt.name)
				continue
			}
			assert.Equal(t, in[i], got[i], tt.name)
		}
	}
}

func TestBoundary(t *testing.T) {
	one := record.New("a", "b", "c", 1)
	for _, tt := range sorts {
		assert.Empty(t, tt.f(nil), tt.name)
		assert.Empty(t, tt.f([]record.Record{}), tt.name)
		assert.Equal(t, []record.Record{one}, tt.f([]record.Record{one}), tt.name)
	}
}

func TestCrossAlgorithmAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for trial := 0; trial < 20; trial++ {
		in := randomRecords(r, r.Intn(100))
		want := keysOf(Sort(Insertion, slices.Clone(in)))
		for _, alg := range Algorithms[1:] {
			assert.Equal(t, want, keysOf(Sort(alg, slices.Clone(in))), alg.String())
		}
	}
}

// keysOf drops the title, which is not part of the order.
func keysOf(s []record.Record) []record.Record {
	out := make([]record.Record, len(s))
	for i, r := range s {
		out[i] = record.New(r.Name(), "", r.Group(), r.Amount())
	}
	return out
}

func TestMergeLeavesInput(t *testing.T) {
	in := []record.Record{
		record.New("b", "", "g", 1),
		record.New("a", "", "g", 1),
	}
	orig := slices.Clone(in)
	out := MergeSort(in)
	assert.Equal(t, orig, in)
	assert.Equal(t, "a", out[0].Name())
}

func TestSortCounted(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	in := randomRecords(r, 50)
	sorted := MergeWith(in, TieLeft)

	for _, alg := range Algorithms {
		got, st := SortCounted(alg, slices.Clone(in))
		assert.True(t, isSorted(got), alg.String())
		assert.Positive(t, st.Comparisons, alg.String())
	}

	// already sorted input costs n-1 comparisons for the adaptive sorts
	for _, alg := range []Algorithm{Insertion, Cocktail} {
		_, st := SortCounted(alg, slices.Clone(sorted))
		assert.EqualValues(t, len(sorted)-1, st.Comparisons, alg.String())
		assert.Zero(t, st.Moves, alg.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	got, err := ParseAlgorithm("Merge_Sort")
	require.NoError(t, err)
	assert.Equal(t, Merge, got)

	_, err = ParseAlgorithm("quick")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
}
