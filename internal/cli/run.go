/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full simulation suite.

REQUIREMENTS:
  User-specified:
  - Run the configured scenarios.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails, validation fails, or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  yule-runner run --horizons 1,2,3 --trials 100000

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pbirch/yule-runner/internal/config"
	"github.com/pbirch/yule-runner/internal/engine"
)

var (
	horizonsOverride []float64
	trialsOverride   int
	maxArrOverride   int
	seedOverride     int64
	workersOverride  int
	outputOverride   string
	dumpCounts       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation suite",
	Long: `Executes one scenario per configured horizon.
Each scenario follows the same protocol:
1. Sampling: draws max-arrivals exponential waiting times per trial (the k-th
   at rate k) and counts arrivals that land inside the horizon.
2. Summary: mean, variance, min/max, and the full count histogram.
3. Verification: compares the sample mean against e^t - 1 and runs a
   chi-square goodness-of-fit test against the Geometric(e^-t) law.

Results are saved to CSV (one summary row per horizon) and JSONL (full
results including the histogram). A warning is raised when too many trials
saturate the max-arrivals truncation, since those counts are biased low.`,
	Example: `  # Run with defaults (uses yule_runner.yaml)
  yule-runner run

  # Three horizons, a fixed seed for a reproducible run
  yule-runner run --horizons 1,2,3 --seed 42

  # A bigger experiment on 8 workers, results in ./out
  yule-runner run --trials 1000000 --workers 8 -o ./out

  # Keep the raw per-trial counts for external analysis
  yule-runner run --dump-counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, it means user specified a file that didn't load, OR
		// parsing failed. config.Load handles "no file found" by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		if len(horizonsOverride) > 0 {
			cfg.Horizons = horizonsOverride
		}
		if cmd.Flags().Changed("trials") {
			cfg.Trials = trialsOverride
		}
		if cmd.Flags().Changed("max-arrivals") {
			cfg.MaxArrivals = maxArrOverride
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seedOverride
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workersOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if dumpCounts {
			cfg.DumpCounts = true
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64SliceVar(&horizonsOverride, "horizons", nil, "Comma-separated list of time horizons")
	runCmd.Flags().IntVar(&trialsOverride, "trials", 0, "Number of trials per scenario")
	runCmd.Flags().IntVar(&maxArrOverride, "max-arrivals", 0, "Waiting times drawn per trial (truncation bound)")
	runCmd.Flags().Int64Var(&seedOverride, "seed", 0, "RNG seed (0 derives one from the wall clock)")
	runCmd.Flags().IntVar(&workersOverride, "workers", 0, "Worker goroutines (0 uses all CPUs; never changes results)")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSONL)")
	runCmd.Flags().BoolVar(&dumpCounts, "dump-counts", false, "Also write raw per-trial counts, one file per horizon")
}
