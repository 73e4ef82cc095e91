// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record defines the employee-like entries that are sorted by the
// benchmark, and the single total order that every sorting algorithm uses.
//
// Records are ordered by group, then name, then amount.  All of the
// relational helpers in this package are derived from Compare, so they can
// never disagree with each other.
package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRecord is returned by CompareValues when either operand is not a Record.
var ErrNotRecord = errors.New("record: operand is not a Record")

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Record is one row of a dataset.  The fields are unexported so a Record
// cannot change after it is constructed; copies are interchangeable.
type Record struct {
	name   string
	title  string
	group  string
	amount int64
}

// New constructs a Record.
func New(name, title, group string, amount int64) Record {
	return Record{name: name, title: title, group: group, amount: amount}
}

func (r Record) Name() string  { return r.name }
func (r Record) Title() string { return r.title }
func (r Record) Group() string { return r.group }
func (r Record) Amount() int64 { return r.amount }

func (r Record) String() string {
	return fmt.Sprintf("(%q, %q, %q, %d)", r.name, r.title, r.group, r.amount)
}

// Compare orders a and b by group, then name, then amount.  The title does
// not take part in the order.
func Compare(a, b Record) Ordering {
	if c := strings.Compare(a.group, b.group); c != 0 {
		return Ordering(c)
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return Ordering(c)
	}
	switch {
	case a.amount < b.amount:
		return Less
	case a.amount > b.amount:
		return Greater
	}
	return Equal
}

// CompareValues compares two arbitrary values, which must both be Records.
func CompareValues(a, b any) (Ordering, error) {
	ra, ok := a.(Record)
	if !ok {
		return Equal, fmt.Errorf("%w: got %T", ErrNotRecord, a)
	}
	rb, ok := b.(Record)
	if !ok {
		return Equal, fmt.Errorf("%w: got %T", ErrNotRecord, b)
	}
	return Compare(ra, rb), nil
}

func (r Record) Less(o Record) bool           { return Compare(r, o) == Less }
func (r Record) LessOrEqual(o Record) bool    { return Compare(r, o) != Greater }
func (r Record) Greater(o Record) bool        { return Compare(r, o) == Greater }
func (r Record) GreaterOrEqual(o Record) bool { return Compare(r, o) != Less }

// Equal reports whether r and o have the same group, name and amount.
func (r Record) Equal(o Record) bool { return Compare(r, o) == Equal }
