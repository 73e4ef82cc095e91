// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrFieldCount is returned when a row does not have exactly NumFields fields.
	ErrFieldCount = errors.New("record: wrong number of fields")
	// ErrAmount is returned when the amount field is not an integer.
	ErrAmount = errors.New("record: amount is not an integer")
)

// NumFields is the number of fields in a serialized Record.
const NumFields = 4

// Header is the column heading written in front of serialized Records.
var Header = []string{"full_name", "position", "division", "salary"}

// Parse builds a Record from a row of text fields in the order
// name, title, group, amount.
func Parse(fields []string) (Record, error) {
	if len(fields) != NumFields {
		return Record{}, fmt.Errorf("%w: want %d, got %d", ErrFieldCount, NumFields, len(fields))
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrAmount, fields[3])
	}
	return New(fields[0], fields[1], fields[2], amount), nil
}

// Fields is the inverse of Parse.
func (r Record) Fields() []string {
	return []string{r.name, r.title, r.group, strconv.FormatInt(r.amount, 10)}
}
