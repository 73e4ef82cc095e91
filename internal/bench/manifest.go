// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jonlawlor/benchsort/internal/sorting"
)

// Manifest summarises one benchmark session.
type Manifest struct {
	RunID    string    `yaml:"run_id"`
	Started  time.Time `yaml:"started"`
	Seed     uint64    `yaml:"seed,omitempty"`
	MergeTie string    `yaml:"merge_tie"`
	Samples  []Sample  `yaml:"samples"`
}

// Sample is the manifest form of a Result, plus where the sorted output went.
type Sample struct {
	Algorithm string  `yaml:"algorithm"`
	Size      int     `yaml:"size"`
	Seconds   float64 `yaml:"seconds"`
	Output    string  `yaml:"output,omitempty"`
}

// NewManifest starts a manifest with a fresh run id.
func NewManifest(tie sorting.Tie, seed uint64) *Manifest {
	return &Manifest{
		RunID:    uuid.NewString(),
		Started:  time.Now().UTC().Truncate(time.Second),
		Seed:     seed,
		MergeTie: tie.String(),
	}
}

// Add records a result and the file its sorted output was written to.
func (m *Manifest) Add(r Result, output string) {
	m.Samples = append(m.Samples, Sample{
		Algorithm: r.Algorithm.String(),
		Size:      r.Size,
		Seconds:   r.Seconds(),
		Output:    output,
	})
}

// Series converts the samples back into results.
func (m *Manifest) Series() (Series, error) {
	s := make(Series, 0, len(m.Samples))
	for _, smp := range m.Samples {
		alg, err := sorting.ParseAlgorithm(smp.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", m.RunID, err)
		}
		s = append(s, Result{
			Algorithm: alg,
			Size:      smp.Size,
			Elapsed:   time.Duration(smp.Seconds * float64(time.Second)),
		})
	}
	return s, nil
}

// WriteManifest encodes m as YAML.
func WriteManifest(w io.Writer, m *Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return enc.Close()
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return nil, fmt.Errorf("reading manifest: bad run id: %w", err)
	}
	return &m, nil
}
