// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	john := New("John Smith", "Manager", "Marketing", 50000)
	jane := New("Jane Doe", "Assistant Manager", "Marketing", 45000)
	bob := New("Bob Johnson", "Manager", "Sales", 55000)
	samantha := New("Samantha Lee", "Assistant Manager", "Sales", 47500)

	for i, tt := range []struct {
		a, b Record
		want Ordering
	}{
		{john, jane, Greater},
		{bob, samantha, Less},
		{john, bob, Less},
		{jane, samantha, Less},
		{john, john, Equal},
		{New("a", "x", "Sales", 1), New("z", "y", "Finance", 1), Greater},
		{New("a", "x", "G", 1), New("a", "y", "G", 2), Less},
		{New("a", "x", "G", 2), New("a", "y", "G", 2), Equal},
	} {
		assert.Equal(t, tt.want, Compare(tt.a, tt.b), "%d", i)
		assert.Equal(t, -tt.want, Compare(tt.b, tt.a), "%d reversed", i)
	}
}

func TestRelationsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	groups := []string{"Sales", "Finance"}
	names := []string{"Ann", "Bo"}
	var rs []Record
	for i := 0; i < 40; i++ {
		rs = append(rs, New(names[r.Intn(2)], "t", groups[r.Intn(2)], int64(r.Intn(3))))
	}
	for _, a := range rs {
		for _, b := range rs {
			c := Compare(a, b)
			assert.Equal(t, c == Less, a.Less(b))
			assert.Equal(t, c != Greater, a.LessOrEqual(b))
			assert.Equal(t, c == Greater, a.Greater(b))
			assert.Equal(t, c != Less, a.GreaterOrEqual(b))
			assert.Equal(t, c == Equal, a.Equal(b))
			for _, d := range rs {
				if a.LessOrEqual(b) && b.LessOrEqual(d) {
					assert.True(t, a.LessOrEqual(d), "%v <= %v <= %v", a, b, d)
				}
			}
		}
	}
}

func TestCompareValues(t *testing.T) {
	sales := New("a", "b", "Sales", 1)
	finance := New("a", "b", "Finance", 1)

	got, err := CompareValues(sales, finance)
	require.NoError(t, err)
	assert.Equal(t, Greater, got)

	_, err = CompareValues(sales, "Finance")
	require.ErrorIs(t, err, ErrNotRecord)
	_, err = CompareValues(42, sales)
	require.ErrorIs(t, err, ErrNotRecord)
}

func TestParse(t *testing.T) {
	r, err := Parse([]string{"Bob", "Mgr", "Sales", "55000"})
	require.NoError(t, err)
	assert.Equal(t, New("Bob", "Mgr", "Sales", 55000), r)
	assert.Equal(t, []string{"Bob", "Mgr", "Sales", "55000"}, r.Fields())

	_, err = Parse([]string{"Bob", "Mgr", "Sales"})
	require.ErrorIs(t, err, ErrFieldCount)

	_, err = Parse([]string{"Bob", "Mgr", "Sales", "lots"})
	require.ErrorIs(t, err, ErrAmount)
}

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "GREATER", Greater.String())
	assert.Equal(t, "Ordering(7)", Ordering(7).String())
}
