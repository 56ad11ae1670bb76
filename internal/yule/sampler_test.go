package yule

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampler_Validation(t *testing.T) {
	tests := []struct {
		name        string
		horizon     float64
		maxArrivals int
		wantErr     error
	}{
		{"valid", 3.0, 300, nil},
		{"zero horizon", 0, 300, ErrInvalidHorizon},
		{"negative horizon", -1.5, 300, ErrInvalidHorizon},
		{"nan horizon", math.NaN(), 300, ErrInvalidHorizon},
		{"inf horizon", math.Inf(1), 300, ErrInvalidHorizon},
		{"zero max arrivals", 3.0, 0, ErrInvalidMaxArrivals},
		{"negative max arrivals", 3.0, -7, ErrInvalidMaxArrivals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSampler(tt.horizon, tt.maxArrivals)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.horizon, s.Horizon)
			assert.Equal(t, tt.maxArrivals, s.MaxArrivals)
		})
	}
}

func TestSample_ShapeAndBounds(t *testing.T) {
	s, err := NewSampler(3.0, 50)
	require.NoError(t, err)

	counts, err := s.Sample(rand.New(rand.NewSource(7)), 2000)
	require.NoError(t, err)
	require.Len(t, counts, 2000)

	for i, c := range counts {
		if c < 0 || c > s.MaxArrivals {
			t.Fatalf("counts[%d] = %d, outside [0, %d]", i, c, s.MaxArrivals)
		}
	}
}

func TestSample_RejectsNonPositiveTrials(t *testing.T) {
	s, err := NewSampler(3.0, 50)
	require.NoError(t, err)

	_, err = s.Sample(rand.New(rand.NewSource(1)), 0)
	require.ErrorIs(t, err, ErrInvalidTrialCount)

	_, err = s.Sample(rand.New(rand.NewSource(1)), -10)
	require.ErrorIs(t, err, ErrInvalidTrialCount)
}

func TestSample_Determinism(t *testing.T) {
	s, err := NewSampler(3.0, 100)
	require.NoError(t, err)

	first, err := s.Sample(rand.New(rand.NewSource(12345)), 500)
	require.NoError(t, err)
	second, err := s.Sample(rand.New(rand.NewSource(12345)), 500)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must reproduce the same counts")
}

// TestTrial_GoldenDrawOrder replays the documented draw order (k = 1..max,
// ExpFloat64()/k, cumulative sum) against an independent rand.Rand with the
// same seed. Trial must match it bit for bit: the order is a public
// contract for recorded seeds.
func TestTrial_GoldenDrawOrder(t *testing.T) {
	const seed = 99
	const maxArrivals = 20

	s, err := NewSampler(3.0, maxArrivals)
	require.NoError(t, err)

	got := s.Trial(rand.New(rand.NewSource(seed)))

	ref := rand.New(rand.NewSource(seed))
	wantWaits := make([]float64, maxArrivals)
	wantArrivals := make([]float64, maxArrivals)
	sum := 0.0
	wantCount := 0
	for k := 1; k <= maxArrivals; k++ {
		w := ref.ExpFloat64() / float64(k)
		sum += w
		wantWaits[k-1] = w
		wantArrivals[k-1] = sum
		if sum <= 3.0 {
			wantCount++
		}
	}

	require.Equal(t, wantWaits, got.WaitingTimes)
	require.Equal(t, wantArrivals, got.ArrivalTimes)
	assert.Equal(t, wantCount, got.Count)
}

func TestTrial_ArrivalsStrictlyIncreasing(t *testing.T) {
	s, err := NewSampler(2.0, 200)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 50; trial++ {
		tr := s.Trial(rng)
		require.Len(t, tr.ArrivalTimes, s.MaxArrivals)
		prev := 0.0
		for i, at := range tr.ArrivalTimes {
			if at <= prev {
				t.Fatalf("trial %d: arrival %d = %v, not after %v", trial, i, at, prev)
			}
			prev = at
		}
	}
}

func TestCount_MatchesTrial(t *testing.T) {
	s, err := NewSampler(3.0, 80)
	require.NoError(t, err)

	for seed := int64(0); seed < 25; seed++ {
		viaTrial := s.Trial(rand.New(rand.NewSource(seed))).Count
		viaCount := s.Count(rand.New(rand.NewSource(seed)))
		assert.Equal(t, viaTrial, viaCount, "seed %d", seed)
	}
}

// TestCount_ConstantRNGConsumption pins the contract that a trial always
// consumes exactly MaxArrivals draws, so trials packed into one shared
// source stay aligned no matter where each trajectory crosses the horizon.
func TestCount_ConstantRNGConsumption(t *testing.T) {
	const seed = 31
	const maxArrivals = 40

	s, err := NewSampler(0.5, maxArrivals)
	require.NoError(t, err)

	used := rand.New(rand.NewSource(seed))
	s.Count(used)

	ref := rand.New(rand.NewSource(seed))
	for i := 0; i < maxArrivals; i++ {
		ref.ExpFloat64()
	}

	assert.Equal(t, ref.Int63(), used.Int63())
}

func TestSample_MeanNearClosedForm(t *testing.T) {
	// Horizon 1: expected mean e - 1 with per-trial std ~2.16, so the
	// tolerance below sits at roughly 10 sigma for 50k trials.
	s, err := NewSampler(1.0, 60)
	require.NoError(t, err)

	counts, err := s.Sample(rand.New(rand.NewSource(2024)), 50000)
	require.NoError(t, err)

	sum := 0.0
	for _, c := range counts {
		sum += float64(c)
	}
	mean := sum / float64(len(counts))

	assert.InDelta(t, ExpectedCount(1.0), mean, 0.1)
}
