/*
PURPOSE:
  Defines the 'expected' subcommand.
  Prints the closed-form predictions for a horizon without simulating.

REQUIREMENTS:
  User-specified:
  - Quick way to see e^t - 1 and the Geometric law a run will be checked
    against.

  Implementation-discovered:
  - Useful sanity step before committing to a large run: shows how much
    probability mass sits near any candidate max_arrivals.

ARCHITECTURE INTEGRATION:
  - Calls: internal/yule closed forms

ERROR HANDLING:
  - Rejects non-positive horizons with the same sentinel the sampler uses.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  yule-runner expected --horizon 3 --upto 10

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/yule/closedform.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/pbirch/yule-runner/internal/yule"
)

var (
	expectedHorizon float64
	expectedUpto    int
)

var expectedCmd = &cobra.Command{
	Use:   "expected",
	Short: "Print closed-form predictions for a horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := expectedHorizon
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return yule.ErrInvalidHorizon
		}

		p := yule.GeometricP(t)
		fmt.Printf("horizon:       %g\n", t)
		fmt.Printf("expected mean: %.6f  (e^t - 1)\n", yule.ExpectedCount(t))
		fmt.Printf("geometric p:   %.6g  (e^-t)\n", p)

		if expectedUpto >= 0 {
			fmt.Printf("\n%6s  %12s  %12s\n", "k", "pmf", "cdf")
			for k := 0; k <= expectedUpto; k++ {
				fmt.Printf("%6d  %12.6g  %12.6g\n", k, yule.GeometricPMF(p, k), yule.GeometricCDF(p, k))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(expectedCmd)

	expectedCmd.Flags().Float64Var(&expectedHorizon, "horizon", 3.0, "Time horizon t")
	expectedCmd.Flags().IntVar(&expectedUpto, "upto", -1, "Also print the Geometric pmf/cdf for counts 0..K")
}
