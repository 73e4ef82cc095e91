// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/jonlawlor/benchsort/internal/record"
	"github.com/jonlawlor/benchsort/internal/sorting"
)

var fileName = regexp.MustCompile(`^file(\d+)\.csv$`)

// FileName is the name of the input table holding size records.
func FileName(size int) string {
	return fmt.Sprintf("file%d.csv", size)
}

// OutputDir is the directory under root that holds the tables sorted by alg.
func OutputDir(root string, alg sorting.Algorithm) string {
	return filepath.Join(root, "folder_"+alg.String()+"_sort")
}

// ListSizes finds the input tables in dir and returns their sizes in
// ascending order.  Other files are ignored.
func ListSizes(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var sizes []int
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		m := fileName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	return sizes, nil
}

// Load reads a CSV table from path.
func Load(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Save writes records to path as a CSV table, creating the parent
// directory if needed.
func Save(path string, records []record.Record) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, records)
}
