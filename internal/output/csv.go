/*
PURPOSE:
  Writes scenario results to a CSV file, one row per horizon.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output summary statistics to CSV for spreadsheet-friendly analysis.

  Implementation-discovered:
  - Needs to create file if not exists, truncate on new run (each run is a
    fresh experiment; appending would mix seeds).
  - Histogram bins are too wide for CSV; they live in the JSONL file only.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.RunResult

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex if concurrent writes are expected (Engine might be parallel).

USAGE:
  w, err := output.NewCSVWriter("yule_results.csv")
  w.Write(result)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion together.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when RunResult struct changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/pbirch/yule-runner/internal/model"
)

// CSVWriter handles writing results to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	// Write Header
	header := []string{
		"run_id", "timestamp", "horizon", "trials", "max_arrivals", "seed", "workers",
		"duration_s", "mean", "variance", "min_count", "max_count",
		"expected_mean", "mean_error", "geometric_p",
		"saturated_trials", "saturated_fraction", "saturation_warning",
		"chi_square", "chi_square_df",
		"error",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single result to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.RunResult) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.RunID,
		r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		strconv.FormatFloat(r.Horizon, 'g', -1, 64),
		fmt.Sprintf("%d", r.Trials),
		fmt.Sprintf("%d", r.MaxArrivals),
		fmt.Sprintf("%d", r.Seed),
		fmt.Sprintf("%d", r.Workers),
		fmt.Sprintf("%.4f", r.Duration.Seconds()),
		fmt.Sprintf("%.6f", r.Mean),
		fmt.Sprintf("%.6f", r.Variance),
		fmt.Sprintf("%d", r.MinCount),
		fmt.Sprintf("%d", r.MaxCount),
		fmt.Sprintf("%.6f", r.ExpectedMean),
		fmt.Sprintf("%.6f", r.MeanError),
		strconv.FormatFloat(r.GeometricP, 'g', -1, 64),
		fmt.Sprintf("%d", r.SaturatedTrials),
		strconv.FormatFloat(r.SaturatedFraction, 'g', -1, 64),
		strconv.FormatBool(r.SaturationWarning),
		fmt.Sprintf("%.4f", r.ChiSquare),
		fmt.Sprintf("%d", r.ChiSquareDF),
		r.Error,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
