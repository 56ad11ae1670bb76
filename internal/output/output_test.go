package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbirch/yule-runner/internal/model"
)

func sampleResult() model.RunResult {
	return model.RunResult{
		RunID:             "f0b5ad0e-8f6a-4b2e-9d3c-0a1b2c3d4e5f",
		Timestamp:         time.Date(2026, 8, 21, 10, 30, 0, 0, time.UTC),
		Horizon:           3.0,
		Trials:            25000,
		MaxArrivals:       300,
		Seed:              42,
		Workers:           4,
		Duration:          1500 * time.Millisecond,
		Mean:              19.11,
		Variance:          363.2,
		MinCount:          0,
		MaxCount:          162,
		ExpectedMean:      19.085536923187668,
		MeanError:         0.024463076812332,
		GeometricP:        0.049787068367863944,
		SaturatedTrials:   0,
		SaturatedFraction: 0,
		SaturationWarning: false,
		ChiSquare:         101.7,
		ChiSquareDF:       109,
		Histogram: []model.Bin{
			{Count: 0, Observed: 1240, Expected: 1244.676709196599},
			{Count: 1, Observed: 1198, Expected: 1182.7060328896558},
		},
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleResult()))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one row")

	header, row := records[0], records[1]
	require.Equal(t, len(header), len(row))

	byName := map[string]string{}
	for i, name := range header {
		byName[name] = row[i]
	}
	assert.Equal(t, "3", byName["horizon"])
	assert.Equal(t, "25000", byName["trials"])
	assert.Equal(t, "300", byName["max_arrivals"])
	assert.Equal(t, "42", byName["seed"])
	assert.Equal(t, "1.5000", byName["duration_s"])
	assert.Equal(t, "19.085537", byName["expected_mean"])
	assert.Equal(t, "false", byName["saturation_warning"])
	assert.Equal(t, "", byName["error"])
}

func TestCSVWriter_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "run_id")
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")

	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	want := sampleResult()
	require.NoError(t, w.Write(want))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got model.RunResult
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}

func TestWriteCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts_h3.txt")

	require.NoError(t, WriteCounts(path, []int{0, 7, 19, 162}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0\n7\n19\n162\n", string(data))
}

func TestWriteCounts_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts_h1.txt")

	require.NoError(t, WriteCounts(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
