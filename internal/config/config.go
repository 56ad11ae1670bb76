/*
PURPOSE:
  Defines the configuration structure and loading logic for Yule Runner.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of horizons, trial counts, truncation, seed, and workers.
  - Reject invalid parameters before any trial runs (fail fast).

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variable overrides (YULE_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config),
    github.com/caarlos0/env/v11 (env overrides)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Returns optional error if config file is missing (might fall back to defaults).
  - Validate() returns the first violated constraint; callers must not run
    scenarios on a config that failed validation.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml and env.
  - Defaults should be sensible (horizon 3.0, 25k trials, truncation 300).
  - Seed 0 means "derive from wall clock"; the engine records the effective
    seed so any run can be replayed.

USAGE:
  cfg, err := config.Load("yule_runner.yaml")
  if err := cfg.Validate(); err != nil { ... }

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.
  - Keep Validate() in sync with the struct: every numeric knob gets a range check.

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for Yule Runner.
type Config struct {
	// Horizons is the list of time horizons to run, one scenario each.
	Horizons []float64 `yaml:"horizons" env:"YULE_HORIZONS" envSeparator:","`
	// Trials is the number of independent trials per scenario.
	Trials int `yaml:"trials" env:"YULE_TRIALS"`
	// MaxArrivals truncates each trial to this many waiting times.
	MaxArrivals int `yaml:"max_arrivals" env:"YULE_MAX_ARRIVALS"`
	// Seed drives the RNG. 0 derives a seed from the wall clock.
	Seed int64 `yaml:"seed" env:"YULE_SEED"`
	// Workers is the number of goroutines running trial blocks. 0 uses GOMAXPROCS.
	Workers int `yaml:"workers" env:"YULE_WORKERS"`

	OutputDir  string `yaml:"output_dir" env:"YULE_OUTPUT_DIR"`
	OutputFile string `yaml:"output_file" env:"YULE_OUTPUT_FILE"` // CSV summary, one row per scenario.
	// ResultsFile is the JSONL file with the full result per scenario.
	ResultsFile string `yaml:"results_file" env:"YULE_RESULTS_FILE"`
	// DumpCounts writes every raw trial count to <output_dir>/counts_h<horizon>.txt.
	DumpCounts bool `yaml:"dump_counts" env:"YULE_DUMP_COUNTS"`

	// SaturationWarnThreshold flags a scenario when the fraction of trials
	// hitting MaxArrivals exceeds it.
	SaturationWarnThreshold float64 `yaml:"saturation_warn_threshold" env:"YULE_SATURATION_WARN_THRESHOLD"`
	// GofMinExpected is the minimum expected occupancy per chi-square bin
	// before the tail is merged.
	GofMinExpected float64 `yaml:"gof_min_expected" env:"YULE_GOF_MIN_EXPECTED"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Horizons:                []float64{3.0},
		Trials:                  25000,
		MaxArrivals:             300,
		Seed:                    0,
		Workers:                 0,
		OutputDir:               ".",
		OutputFile:              "yule_results.csv",
		ResultsFile:             "yule_results.jsonl",
		DumpCounts:              false,
		SaturationWarnThreshold: 1e-4,
		GofMinExpected:          5.0,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
// Environment variables (YULE_*) override file values in all cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"yule_runner.yaml", "yule_runner.yml", "runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, apply env over defaults.
			if err := env.Parse(cfg); err != nil {
				return nil, fmt.Errorf("parse env: %w", err)
			}
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks every tuning parameter and returns the first violation.
func (c *Config) Validate() error {
	if len(c.Horizons) == 0 {
		return fmt.Errorf("at least one horizon is required")
	}
	for i, h := range c.Horizons {
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			return fmt.Errorf("horizons[%d] must be positive and finite, got %v", i, h)
		}
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.MaxArrivals <= 0 {
		return fmt.Errorf("max_arrivals must be positive, got %d", c.MaxArrivals)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.SaturationWarnThreshold < 0 || c.SaturationWarnThreshold > 1 {
		return fmt.Errorf("saturation_warn_threshold must be in [0,1], got %v", c.SaturationWarnThreshold)
	}
	if c.GofMinExpected <= 0 {
		return fmt.Errorf("gof_min_expected must be positive, got %v", c.GofMinExpected)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	if c.ResultsFile == "" {
		return fmt.Errorf("results_file must not be empty")
	}
	return nil
}
