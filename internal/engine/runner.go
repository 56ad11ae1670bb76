/*
PURPOSE:
  High-level runner that orchestrates a full simulation run.
  Loops through configured horizons and executes one scenario per horizon.

REQUIREMENTS:
  User-specified:
  - Run every configured horizon with a shared base seed.
  - Log results to CSV/JSONL; optionally dump raw counts.
  - Warn loudly when a scenario saturates its truncation.

  Implementation-discovered:
  - Needs to report progress to CLI.
  - Seed 0 resolves to the wall clock ONCE per run; each scenario then
    gets a derived seed so horizons stay statistically independent while
    every RunResult remains individually replayable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine, internal/output

ERROR HANDLING:
  - Validates the config up front and refuses to run on any violation.
  - Logs scenario errors but continues (resilience); the failed scenario
    still gets a row with its Error field set.

IMPLEMENTATION RULES:
  - Iterate horizons in configured order.
  - For each horizon: RunScenario, write result, optionally dump counts.

USAGE:
  engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/engine.go

MAINTENANCE:
  - Update iteration logic if scenarios themselves ever run concurrently.
*/

package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pbirch/yule-runner/internal/config"
	"github.com/pbirch/yule-runner/internal/output"
)

// scenarioSeedStride spaces the derived per-horizon seeds far enough apart
// that their block seed ranges (step 17, see pool.go) cannot overlap below
// ~58k blocks per scenario.
const scenarioSeedStride = 1_000_003

// Run executes every configured scenario.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	e := New(cfg)

	// Resolve the effective base seed once; 0 means wall clock.
	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	output.Logger.Info("Starting run",
		"horizons", len(cfg.Horizons),
		"trials", cfg.Trials,
		"max_arrivals", cfg.MaxArrivals,
		"seed", baseSeed,
	)

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// Setup Outputs
	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, cfg.ResultsFile)
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	for i, horizon := range cfg.Horizons {
		seed := baseSeed + int64(i)*scenarioSeedStride
		output.Logger.Info("Running scenario", "horizon", horizon, "trials", cfg.Trials, "seed", seed)

		res, counts, err := e.RunScenario(horizon, seed)
		if err != nil {
			output.Logger.Error("Scenario failed", "horizon", horizon, "error", err)
			// Write the failed row anyway so the run record stays complete.
			if werr := csvWriter.Write(res); werr != nil {
				output.Logger.Error("Failed to write partial result to CSV", "error", werr)
			}
			if werr := jsonWriter.Write(res); werr != nil {
				output.Logger.Error("Failed to write partial result to JSON", "error", werr)
			}
			continue
		}

		output.Logger.Info("Scenario complete",
			"horizon", horizon,
			"mean", fmt.Sprintf("%.4f", res.Mean),
			"expected", fmt.Sprintf("%.4f", res.ExpectedMean),
			"abs_error", fmt.Sprintf("%.4f", math.Abs(res.MeanError)),
			"chi_square", fmt.Sprintf("%.2f", res.ChiSquare),
			"duration", res.Duration,
		)

		if res.SaturationWarning {
			output.Logger.Warn("Truncation saturated; counts are biased low",
				"horizon", horizon,
				"max_arrivals", cfg.MaxArrivals,
				"saturated_fraction", res.SaturatedFraction,
				"threshold", cfg.SaturationWarnThreshold,
			)
		}

		// Write Result
		if err := csvWriter.Write(res); err != nil {
			output.Logger.Error("Failed to write result to CSV", "error", err)
		}
		if err := jsonWriter.Write(res); err != nil {
			output.Logger.Error("Failed to write result to JSON", "error", err)
		}

		if cfg.DumpCounts {
			name := "counts_h" + strconv.FormatFloat(horizon, 'g', -1, 64) + ".txt"
			countsPath := filepath.Join(cfg.OutputDir, name)
			if err := output.WriteCounts(countsPath, counts); err != nil {
				output.Logger.Error("Failed to dump counts", "path", countsPath, "error", err)
			} else {
				output.Logger.Info("Dumped raw counts", "path", countsPath, "trials", len(counts))
			}
		}
	}

	return nil
}
