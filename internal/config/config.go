// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the benchmark settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/jonlawlor/benchsort/internal/sorting"
)

// Config holds every setting of a benchmark session.
type Config struct {
	DataDir    string   `mapstructure:"data_dir"`
	OutputDir  string   `mapstructure:"output_dir"`
	PlotDir    string   `mapstructure:"plot_dir"`
	StartSize  int      `mapstructure:"start_size"`
	Step       int      `mapstructure:"step"`
	Count      int      `mapstructure:"count"`
	Seed       uint64   `mapstructure:"seed"`
	Algorithms []string `mapstructure:"algorithms"`
	MergeTie   string   `mapstructure:"merge_tie"`
	Debug      bool     `mapstructure:"debug"`
}

// Default returns the classic settings: ten tables from
// 100 rows growing by 12000, sorted by all three algorithms.
func Default() Config {
	return Config{
		DataDir:    "files",
		OutputDir:  ".",
		PlotDir:    ".",
		StartSize:  100,
		Step:       12000,
		Count:      10,
		Algorithms: []string{"insertion", "cocktail", "merge"},
		MergeTie:   "right",
	}
}

// New returns a viper instance with the defaults registered.  Settings are
// read from benchsort.yaml in the working directory, if present, and from
// environment variables prefixed with BENCHSORT_, as in BENCHSORT_DATA_DIR.
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetConfigName("benchsort")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("BENCHSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("plot_dir", d.PlotDir)
	v.SetDefault("start_size", d.StartSize)
	v.SetDefault("step", d.Step)
	v.SetDefault("count", d.Count)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("algorithms", d.Algorithms)
	v.SetDefault("merge_tie", d.MergeTie)
	v.SetDefault("debug", d.Debug)
	return v
}

// Load reads the configuration file, if any, and decodes v.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	// a comma separated list from the environment arrives as one element
	if len(cfg.Algorithms) == 1 && strings.Contains(cfg.Algorithms[0], ",") {
		cfg.Algorithms = strings.Split(cfg.Algorithms[0], ",")
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.DataDir == "" {
		result = multierror.Append(result, errors.New("data_dir must be set"))
	}
	if c.StartSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("start_size must be positive, got %d", c.StartSize))
	}
	if c.Step < 0 {
		result = multierror.Append(result, fmt.Errorf("step must not be negative, got %d", c.Step))
	}
	if c.Count < 1 {
		result = multierror.Append(result, fmt.Errorf("count must be at least 1, got %d", c.Count))
	}
	if len(c.Algorithms) == 0 {
		result = multierror.Append(result, errors.New("at least one algorithm is required"))
	}
	for _, a := range c.Algorithms {
		if _, err := sorting.ParseAlgorithm(a); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if _, err := sorting.ParseTie(c.MergeTie); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Sorts returns the configured algorithms.  It assumes c is valid.
func (c Config) Sorts() []sorting.Algorithm {
	algs := make([]sorting.Algorithm, 0, len(c.Algorithms))
	for _, a := range c.Algorithms {
		alg, err := sorting.ParseAlgorithm(a)
		if err == nil {
			algs = append(algs, alg)
		}
	}
	return algs
}

// Tie returns the configured merge tie policy.  It assumes c is valid.
func (c Config) Tie() sorting.Tie {
	t, _ := sorting.ParseTie(c.MergeTie)
	return t
}
