/*
PURPOSE:
  Distribution-free summaries of per-trial counts: mean, variance,
  extremes, saturation, and the raw count histogram.

REQUIREMENTS:
  User-specified:
  - Report the sample mean for comparison against the closed form.
  - Report how many trials hit the truncation bound.

  Implementation-discovered:
  - Streaming sum/sum-of-squares accumulation; a million trials should
    never need a second pass or a float64 slice copy.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumed by: internal/model (RunResult fields)

ERROR HANDLING:
  - None. Empty input yields a zero Summary; callers validate trial
    counts long before this point.

IMPLEMENTATION RULES:
  - Sample variance (n-1 denominator); n == 1 reports zero variance.

USAGE:
  sum := stats.Summarize(counts, maxArrivals)
  hist := stats.Histogram(counts)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/stats/gof.go
  - internal/engine/runner.go

MAINTENANCE:
  - Extend Summary rather than adding loose return values.
*/

package stats

// Summary holds the aggregate statistics of one batch of trial counts.
type Summary struct {
	Trials    int
	Mean      float64
	Variance  float64
	Min       int
	Max       int
	Saturated int // trials whose count reached the truncation bound
}

// Summarize computes a Summary over per-trial counts in a single pass.
// maxArrivals is the truncation bound used to detect saturated trials.
func Summarize(counts []int, maxArrivals int) Summary {
	if len(counts) == 0 {
		return Summary{}
	}

	sum := 0.0
	sqsum := 0.0
	min, max := counts[0], counts[0]
	saturated := 0

	for _, c := range counts {
		f := float64(c)
		sum += f
		sqsum += f * f
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
		if c >= maxArrivals {
			saturated++
		}
	}

	n := float64(len(counts))
	mean := sum / n
	variance := 0.0
	if len(counts) > 1 {
		variance = (sqsum - n*mean*mean) / (n - 1)
		if variance < 0 {
			// Cancellation can push a constant sample epsilon negative.
			variance = 0
		}
	}

	return Summary{
		Trials:    len(counts),
		Mean:      mean,
		Variance:  variance,
		Min:       min,
		Max:       max,
		Saturated: saturated,
	}
}

// SaturatedFraction returns the share of trials that hit the truncation
// bound. Zero for an empty summary.
func (s Summary) SaturatedFraction() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Saturated) / float64(s.Trials)
}

// Histogram buckets counts by value: entry k holds the number of trials
// that produced exactly k arrivals. The slice spans 0 through the largest
// observed count.
func Histogram(counts []int) []int64 {
	if len(counts) == 0 {
		return nil
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	hist := make([]int64, max+1)
	for _, c := range counts {
		hist[c]++
	}
	return hist
}
