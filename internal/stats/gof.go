/*
PURPOSE:
  Chi-square goodness-of-fit of an observed count histogram against the
  exact geometric distribution predicted for a horizon.

REQUIREMENTS:
  User-specified:
  - Quantify how closely the empirical distribution tracks the
    closed-form geometric prediction.

  Implementation-discovered:
  - Sparse tail bins break the chi-square approximation; bins with
    expected mass under a floor must be merged into one tail bin.
  - The geometric parameter comes from the closed form, not from the
    data, so no degree of freedom is spent estimating it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (recorded into RunResult), test suites.
  - Uses: internal/yule closed forms.

ERROR HANDLING:
  - Degenerate inputs (no trials, or a floor that swallows every bin)
    report a zero statistic with zero degrees of freedom.

IMPLEMENTATION RULES:
  - The geometric pmf decreases in k, so individual bins form a prefix
    and the merge point is the first k whose expected mass drops below
    the floor.

USAGE:
  stat, df := stats.ChiSquareGeometric(hist, trials, yule.GeometricP(3), 5)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/yule/closedform.go
  - internal/stats/summary.go

MAINTENANCE:
  - Keep the merge rule in sync with the engine's histogram reporting if
    either changes.
*/

package stats

import (
	"github.com/pbirch/yule-runner/internal/yule"
)

// ChiSquareGeometric computes the chi-square statistic of an observed
// histogram against Geometric(p) over {0,1,2,...}, with trials draws.
//
// Bins 0..K-1 keep every value of k whose expected occupancy
// trials*pmf(k) stays at or above minExpected; everything from K on is
// merged into a single tail bin, including observed counts beyond the
// histogram's length. Returns the statistic and the degrees of freedom
// (bins minus one; p is known, not fitted).
func ChiSquareGeometric(hist []int64, trials int, p float64, minExpected float64) (float64, int) {
	if trials <= 0 {
		return 0, 0
	}

	n := float64(trials)

	// First k whose expected bin occupancy falls under the floor. The pmf
	// is monotone decreasing, so everything past it belongs to the tail.
	cut := 0
	for n*yule.GeometricPMF(p, cut) >= minExpected {
		cut++
	}
	if cut == 0 {
		return 0, 0
	}

	stat := 0.0
	var observedHead int64
	for k := 0; k < cut; k++ {
		var obs int64
		if k < len(hist) {
			obs = hist[k]
		}
		observedHead += obs
		exp := n * yule.GeometricPMF(p, k)
		diff := float64(obs) - exp
		stat += diff * diff / exp
	}

	var observedTotal int64
	for _, h := range hist {
		observedTotal += h
	}

	tailObs := float64(observedTotal - observedHead)
	tailExp := n * (1 - yule.GeometricCDF(p, cut-1))
	if tailExp > 0 {
		diff := tailObs - tailExp
		stat += diff * diff / tailExp
	}

	// Degrees of freedom: (cut head bins + 1 tail bin) - 1.
	return stat, cut
}
