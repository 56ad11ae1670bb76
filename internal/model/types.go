/*
PURPOSE:
  Defines the core data structures shared across Yule Runner.
  These models represent one scenario run's parameters and outcomes.

REQUIREMENTS:
  User-specified:
  - Record the parameters (horizon, trials, truncation bound, seed) next
    to the statistics so any run can be replayed exactly.
  - Record the closed-form predictions beside the observed values.

  Implementation-discovered:
  - Need JSON tags for the JSON-lines output.
  - Need explicit CSV mapping (histogram stays out of the CSV).

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - The effective seed goes here, never the 0 sentinel; replaying a run
    must not depend on remembering the wall clock.

USAGE:
  res := model.RunResult{...}

SELF-HEALING INSTRUCTIONS:
  - If new statistics are needed, add a field and update the CSV/JSON
    writers.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when the engine starts recording new measurements.
*/

package model

import (
	"time"
)

// RunResult represents the outcome of simulating one horizon scenario.
type RunResult struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`

	// Parameters the run was produced with.
	Horizon     float64 `json:"horizon"`
	Trials      int     `json:"trials"`
	MaxArrivals int     `json:"max_arrivals"`
	Seed        int64   `json:"seed"` // effective seed, replayable as-is
	Workers     int     `json:"workers"`

	Duration time.Duration `json:"duration"`

	// Observed statistics across trials.
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	MinCount int     `json:"min_count"`
	MaxCount int     `json:"max_count"`

	// Closed-form predictions and the gap to them.
	ExpectedMean float64 `json:"expected_mean"` // e^horizon - 1
	MeanError    float64 `json:"mean_error"`    // mean - expected_mean
	GeometricP   float64 `json:"geometric_p"`   // e^-horizon

	// Truncation health.
	SaturatedTrials   int     `json:"saturated_trials"`
	SaturatedFraction float64 `json:"saturated_fraction"`
	SaturationWarning bool    `json:"saturation_warning"`

	// Goodness of fit against Geometric(geometric_p).
	ChiSquare   float64 `json:"chi_square"`
	ChiSquareDF int     `json:"chi_square_df"`

	// Empirical distribution, observed next to expected occupancy.
	Histogram []Bin `json:"histogram,omitempty"`

	Error string `json:"error,omitempty"` // if the scenario failed
}

// Bin is one row of the empirical count distribution.
type Bin struct {
	Count    int     `json:"count"`    // arrivals inside the horizon
	Observed int64   `json:"observed"` // trials that produced exactly Count
	Expected float64 `json:"expected"` // trials * geometric pmf at Count
}
