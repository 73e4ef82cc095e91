// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset generates synthetic employee tables and moves them between
// CSV files and record slices.
package dataset

import (
	"math/rand/v2"
	"strings"

	"github.com/jonlawlor/benchsort/internal/record"
)

var (
	positions = []string{"Manager", "Supervisor", "Assistant", "Director"}
	divisions = []string{"Sales", "Marketing", "Finance", "Operations"}
)

const (
	letters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	minSalary = 50000
	maxSalary = 100000
)

// Generator produces random records from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.  The same seed always
// yields the same records.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns n random records.
func (g *Generator) Generate(n int) []record.Record {
	s := make([]record.Record, n)
	for i := range s {
		s[i] = g.Record()
	}
	return s
}

// Record returns a single random record.
func (g *Generator) Record() record.Record {
	return record.New(
		g.word()+" "+g.word(),
		positions[g.rng.IntN(len(positions))],
		divisions[g.rng.IntN(len(divisions))],
		int64(minSalary+g.rng.IntN(maxSalary-minSalary+1)),
	)
}

// word is 3 to 10 random letters, capitalized.
func (g *Generator) word() string {
	n := 3 + g.rng.IntN(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[g.rng.IntN(len(letters))]
	}
	return strings.ToUpper(string(b[:1])) + strings.ToLower(string(b[1:]))
}

// Sizes returns count sizes starting at start and growing by step.
func Sizes(start, step, count int) []int {
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = start + i*step
	}
	return sizes
}
