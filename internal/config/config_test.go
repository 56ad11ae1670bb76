package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []float64{3.0}, cfg.Horizons)
	assert.Equal(t, 25000, cfg.Trials)
	assert.Equal(t, 300, cfg.MaxArrivals)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "yule_results.csv", cfg.OutputFile)
	assert.Equal(t, "yule_results.jsonl", cfg.ResultsFile)
	assert.False(t, cfg.DumpCounts)
	assert.Equal(t, 1e-4, cfg.SaturationWarnThreshold)
	assert.Equal(t, 5.0, cfg.GofMinExpected)

	require.NoError(t, cfg.Validate(), "defaults must validate")
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("horizons: [0.5, 1.0, 2.0]\ntrials: 1000\nmax_arrivals: 64\nseed: 42\nworkers: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 1.0, 2.0}, cfg.Horizons)
	assert.Equal(t, 1000, cfg.Trials)
	assert.Equal(t, 64, cfg.MaxArrivals)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	// Untouched fields keep their defaults.
	assert.Equal(t, "yule_results.csv", cfg.OutputFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.NotNil(t, cfg, "defaults are still returned on read failure")
}

func TestLoad_NoFileFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultFileSearch(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	data := []byte("trials: 777\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "yule_runner.yaml"), data, 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.Trials)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("horizons: [not-closed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("YULE_TRIALS", "5000")
	t.Setenv("YULE_HORIZONS", "0.25,0.75")
	t.Setenv("YULE_SEED", "99")
	t.Setenv("YULE_DUMP_COUNTS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Trials)
	assert.Equal(t, []float64{0.25, 0.75}, cfg.Horizons)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.DumpCounts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 1000\n"), 0o644))
	t.Setenv("YULE_TRIALS", "2000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Trials, "env wins over file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"no horizons", func(c *Config) { c.Horizons = nil }, "at least one horizon"},
		{"zero horizon", func(c *Config) { c.Horizons = []float64{1.0, 0} }, "horizons[1]"},
		{"negative horizon", func(c *Config) { c.Horizons = []float64{-2.5} }, "horizons[0]"},
		{"nan horizon", func(c *Config) { c.Horizons = []float64{math.NaN()} }, "horizons[0]"},
		{"inf horizon", func(c *Config) { c.Horizons = []float64{math.Inf(1)} }, "horizons[0]"},
		{"zero trials", func(c *Config) { c.Trials = 0 }, "trials must be positive"},
		{"negative trials", func(c *Config) { c.Trials = -4 }, "trials must be positive"},
		{"zero max_arrivals", func(c *Config) { c.MaxArrivals = 0 }, "max_arrivals must be positive"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers must be non-negative"},
		{"threshold above one", func(c *Config) { c.SaturationWarnThreshold = 1.5 }, "saturation_warn_threshold"},
		{"threshold below zero", func(c *Config) { c.SaturationWarnThreshold = -0.1 }, "saturation_warn_threshold"},
		{"zero gof floor", func(c *Config) { c.GofMinExpected = 0 }, "gof_min_expected"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"empty output file", func(c *Config) { c.OutputFile = "" }, "output_file"},
		{"empty results file", func(c *Config) { c.ResultsFile = "" }, "results_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
