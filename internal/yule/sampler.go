/*
PURPOSE:
  Core sampling kernel for pure-birth (Yule) counting processes.
  Draws per-trial inter-arrival times and counts arrivals inside a
  fixed time horizon.

REQUIREMENTS:
  User-specified:
  - Per-trial arrival counts at a fixed horizon.
  - Reproducible runs given a caller-supplied seeded source.

  Implementation-discovered:
  - Waiting time k must be exponential with rate k: after k-1 arrivals
    there are k unit-rate emitters, and memorylessness lets the whole
    trajectory be drawn as independent exponentials instead of a
    tick-by-tick simulation.
  - RNG consumption must be constant per trial (exactly MaxArrivals
    draws) so recorded seeds replay bit-for-bit.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: math/rand via a caller-owned *rand.Rand. Nothing else.

ERROR HANDLING:
  - NewSampler and Sample validate parameters with sentinel errors.
  - No other failure modes exist; the kernel only consumes entropy.

IMPLEMENTATION RULES:
  - Never touch the global rand source. Every draw goes through the
    *rand.Rand the caller passes in.
  - Draw order is part of the public contract: k = 1..MaxArrivals,
    waiting time = ExpFloat64()/k.

USAGE:
  s, err := yule.NewSampler(3.0, 300)
  counts, err := s.Sample(rand.New(rand.NewSource(42)), 25000)

SELF-HEALING INSTRUCTIONS:
  - If counts saturate MaxArrivals, raise MaxArrivals in the caller's
    config. The kernel never resizes it silently.

RELATED FILES:
  - internal/yule/closedform.go
  - internal/engine/pool.go

MAINTENANCE:
  - Any change to the draw order or the horizon comparison breaks
    recorded seeds; update the golden kernel test alongside.
*/

package yule

import (
	"errors"
	"math"
	"math/rand"
)

// ErrInvalidHorizon indicates a non-positive or non-finite time horizon.
var ErrInvalidHorizon = errors.New("horizon must be positive and finite")

// ErrInvalidMaxArrivals indicates a non-positive truncation bound.
var ErrInvalidMaxArrivals = errors.New("max arrivals must be positive")

// ErrInvalidTrialCount indicates a non-positive number of trials.
var ErrInvalidTrialCount = errors.New("trial count must be positive")

// Sampler simulates a pure-birth counting process whose k-th waiting time
// (from the (k-1)-th to the k-th arrival) is exponential with rate k, and
// reports how many arrivals land at or before Horizon.
//
// # Determinism
//
// All randomness flows through the *rand.Rand passed to each method. Given
// the same source state and the same parameters, every method reproduces
// identical output. Each trial consumes exactly MaxArrivals ExpFloat64
// draws regardless of where the trajectory crosses the horizon, so trial
// boundaries in a shared source never drift.
//
// # Horizon boundary
//
// An arrival landing exactly on Horizon counts. The counting process is
// treated as right-continuous: Count reports #{T_k <= Horizon}. The tie has
// probability zero under continuous waiting times; the convention exists so
// the comparison is the same everywhere.
//
// # Truncation
//
// Counts are capped at MaxArrivals. The caller must size MaxArrivals so
// that P(count == MaxArrivals) is negligible for its horizon, otherwise
// results are silently biased downward. Callers can measure the saturated
// fraction across trials to verify the bound (the engine does).
type Sampler struct {
	Horizon     float64
	MaxArrivals int
}

// Trial is one independent realization of the process.
type Trial struct {
	// WaitingTimes holds the MaxArrivals exponential draws in draw order;
	// entry k-1 is the wait from arrival k-1 to arrival k, rate k.
	WaitingTimes []float64
	// ArrivalTimes is the cumulative sum of WaitingTimes. Strictly
	// increasing: ExpFloat64 never returns zero.
	ArrivalTimes []float64
	// Count is the number of ArrivalTimes at or before the horizon.
	Count int
}

// NewSampler validates the process parameters and returns a Sampler.
func NewSampler(horizon float64, maxArrivals int) (*Sampler, error) {
	if horizon <= 0 || math.IsInf(horizon, 1) || math.IsNaN(horizon) {
		return nil, ErrInvalidHorizon
	}
	if maxArrivals <= 0 {
		return nil, ErrInvalidMaxArrivals
	}
	return &Sampler{Horizon: horizon, MaxArrivals: maxArrivals}, nil
}

// Trial draws one full realization: the waiting-time sequence, the
// cumulative arrival times, and the truncated count. Use Count when the
// trajectories themselves are not needed; it allocates nothing.
func (s *Sampler) Trial(rng *rand.Rand) Trial {
	waits := make([]float64, s.MaxArrivals)
	arrivals := make([]float64, s.MaxArrivals)

	t := 0.0
	count := 0
	for k := 1; k <= s.MaxArrivals; k++ {
		w := rng.ExpFloat64() / float64(k)
		t += w
		waits[k-1] = w
		arrivals[k-1] = t
		if t <= s.Horizon {
			count++
		}
	}

	return Trial{WaitingTimes: waits, ArrivalTimes: arrivals, Count: count}
}

// Count draws one realization and returns only the number of arrivals at
// or before the horizon. Identical draw order and RNG consumption as Trial.
func (s *Sampler) Count(rng *rand.Rand) int {
	t := 0.0
	count := 0
	for k := 1; k <= s.MaxArrivals; k++ {
		t += rng.ExpFloat64() / float64(k)
		if t <= s.Horizon {
			count++
		}
	}
	return count
}

// Sample runs the requested number of trials sequentially against the
// supplied source and returns one count per trial, each in
// [0, MaxArrivals].
func (s *Sampler) Sample(rng *rand.Rand, trials int) ([]int, error) {
	if trials <= 0 {
		return nil, ErrInvalidTrialCount
	}

	counts := make([]int, trials)
	for i := range counts {
		counts[i] = s.Count(rng)
	}
	return counts, nil
}
