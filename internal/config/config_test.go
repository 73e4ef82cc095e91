// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonlawlor/benchsort/internal/sorting"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, sorting.Algorithms, cfg.Sorts())
	assert.Equal(t, sorting.TieRight, cfg.Tie())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BENCHSORT_DATA_DIR", "in")
	t.Setenv("BENCHSORT_COUNT", "3")
	t.Setenv("BENCHSORT_ALGORITHMS", "merge,insertion")
	t.Setenv("BENCHSORT_MERGE_TIE", "left")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "in", cfg.DataDir)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, []sorting.Algorithm{sorting.Merge, sorting.Insertion}, cfg.Sorts())
	assert.Equal(t, sorting.TieLeft, cfg.Tie())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "benchsort.yaml"), []byte(`
start_size: 10
step: 5
algorithms: [cocktail]
seed: 42
`), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.StartSize)
	assert.Equal(t, 5, cfg.Step)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, []sorting.Algorithm{sorting.Cocktail}, cfg.Sorts())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.StartSize = 0
	cfg.Count = 0
	cfg.Algorithms = []string{"quick", "merge"}
	cfg.MergeTie = "middle"

	err := cfg.Validate()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}
