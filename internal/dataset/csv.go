// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jonlawlor/benchsort/internal/record"
)

// Read parses a CSV table.  The first row is a header and is skipped; every
// other row must parse as a record.
func Read(r io.Reader) ([]record.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // record.Parse reports the count

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var out []record.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rec, err := record.Parse(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

// Write writes a header row followed by one row per record.
func Write(w io.Writer, records []record.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(record.Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
