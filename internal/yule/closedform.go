/*
PURPOSE:
  Closed-form companions to the sampler: the exact expected count and the
  exact count distribution at a horizon. Pure functions, no randomness.

REQUIREMENTS:
  User-specified:
  - Validate simulations against exact results.

  Implementation-discovered:
  - The count at horizon t is Geometric(p = e^-t) over {0,1,2,...}
    (number of failures before the first success), so the expectation
    is (1-p)/p = e^t - 1.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/stats, internal/cli (expected),
    and the test suites.

ERROR HANDLING:
  - None. Out-of-domain k yields zero mass, matching the distribution.

IMPLEMENTATION RULES:
  - Use math.Expm1 for e^t - 1; the subtraction loses precision for
    small t otherwise.

USAGE:
  mean := yule.ExpectedCount(3)        // 19.0855...
  p := yule.GeometricP(3)              // e^-3
  mass := yule.GeometricPMF(p, 0)      // P(count == 0)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/yule/sampler.go
  - internal/stats/gof.go

MAINTENANCE:
  - None expected; these are fixed mathematical identities.
*/

package yule

import "math"

// ExpectedCount returns the exact expected number of arrivals at or before
// the horizon: e^horizon - 1.
func ExpectedCount(horizon float64) float64 {
	return math.Expm1(horizon)
}

// GeometricP returns the success probability parameterizing the count
// distribution at the horizon: p = e^-horizon.
func GeometricP(horizon float64) float64 {
	return math.Exp(-horizon)
}

// GeometricPMF returns P(count == k) = p * (1-p)^k for k in {0,1,2,...}.
func GeometricPMF(p float64, k int) float64 {
	if k < 0 {
		return 0
	}
	return p * math.Pow(1-p, float64(k))
}

// GeometricCDF returns P(count <= k) = 1 - (1-p)^(k+1) for k in {0,1,2,...}.
func GeometricCDF(p float64, k int) float64 {
	if k < 0 {
		return 0
	}
	return 1 - math.Pow(1-p, float64(k+1))
}
