/*
PURPOSE:
  Core engine for running Yule counting-process scenarios.
  Turns one (horizon, seed) pair into a fully summarized RunResult.

REQUIREMENTS:
  User-specified:
  - Per scenario: mean, variance, min/max, saturation stats, histogram,
    closed-form comparison, chi-square goodness of fit.
  - Flag the scenario when the saturated fraction exceeds the configured
    threshold.

  Implementation-discovered:
  - The result must carry every parameter needed to replay it (seed,
    trials, truncation, horizon), not just the statistics.
  - Histogram bins pair observed occupancy with the Geometric expectation
    so downstream tooling never recomputes the pmf.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go, tests
  - Uses: internal/yule, internal/stats, internal/model, internal/config

ERROR HANDLING:
  - Invalid sampler parameters surface as an error AND as RunResult.Error,
    so the runner can log-and-continue while still recording the failure.

IMPLEMENTATION RULES:
  - All randomness flows through SampleParallel; RunScenario itself is
    deterministic given (horizon, seed, config).
  - Do not log from here; the runner owns progress output.

USAGE:
  e := engine.New(cfg)
  res, counts, err := e.RunScenario(3.0, 42)

SELF-HEALING INSTRUCTIONS:
  - If RunResult grows a field, populate it here and extend the CSV header.

RELATED FILES:
  - internal/engine/pool.go
  - internal/engine/runner.go
  - internal/model/types.go

MAINTENANCE:
  - Keep the statistics block in sync with internal/stats.
*/

package engine

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/pbirch/yule-runner/internal/config"
	"github.com/pbirch/yule-runner/internal/model"
	"github.com/pbirch/yule-runner/internal/stats"
	"github.com/pbirch/yule-runner/internal/yule"
)

// Engine runs counting-process scenarios.
type Engine struct {
	Config *config.Config
}

// New creates a new Engine.
func New(cfg *config.Config) *Engine {
	return &Engine{Config: cfg}
}

// RunScenario simulates one horizon and returns the summarized result plus
// the raw per-trial counts (for optional dumping). The seed is the scenario's
// own seed: replaying with the same seed, trials, and max_arrivals reproduces
// the counts exactly, regardless of worker count.
func (e *Engine) RunScenario(horizon float64, seed int64) (model.RunResult, []int, error) {
	start := time.Now()
	cfg := e.Config

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	res := model.RunResult{
		RunID:       uuid.NewString(),
		Timestamp:   start,
		Horizon:     horizon,
		Trials:      cfg.Trials,
		MaxArrivals: cfg.MaxArrivals,
		Seed:        seed,
		Workers:     workers,
	}

	sampler, err := yule.NewSampler(horizon, cfg.MaxArrivals)
	if err != nil {
		res.Error = err.Error()
		res.Duration = time.Since(start)
		return res, nil, err
	}

	counts := SampleParallel(sampler, seed, cfg.Trials, workers)

	sum := stats.Summarize(counts, cfg.MaxArrivals)
	hist := stats.Histogram(counts)
	p := yule.GeometricP(horizon)
	chi, df := stats.ChiSquareGeometric(hist, sum.Trials, p, cfg.GofMinExpected)

	res.Duration = time.Since(start)
	res.Mean = sum.Mean
	res.Variance = sum.Variance
	res.MinCount = sum.Min
	res.MaxCount = sum.Max
	res.ExpectedMean = yule.ExpectedCount(horizon)
	res.MeanError = res.Mean - res.ExpectedMean
	res.GeometricP = p
	res.SaturatedTrials = sum.Saturated
	res.SaturatedFraction = sum.SaturatedFraction()
	res.SaturationWarning = res.SaturatedFraction > cfg.SaturationWarnThreshold
	res.ChiSquare = chi
	res.ChiSquareDF = df
	res.Histogram = binsFor(hist, sum.Trials, p)

	return res, counts, nil
}

// binsFor pairs each observed occupancy with its Geometric expectation.
func binsFor(hist []int64, trials int, p float64) []model.Bin {
	if len(hist) == 0 {
		return nil
	}
	bins := make([]model.Bin, len(hist))
	for k := range hist {
		bins[k] = model.Bin{
			Count:    k,
			Observed: hist[k],
			Expected: float64(trials) * yule.GeometricPMF(p, k),
		}
	}
	return bins
}
