/*
PURPOSE:
  Dumps raw per-trial counts to a plain text file, one integer per line.
  Lets external tooling recompute any statistic from the raw sample.

REQUIREMENTS:
  User-specified:
  - Optional raw dump behind a config flag (dump_counts).

  Implementation-discovered:
  - One file per scenario keeps horizons separable without a header format.
  - Buffered writes; a 1M-trial dump is ~7MB and line-at-a-time os.File
    writes would crawl.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: []int from yule.Sampler.Sample

ERROR HANDLING:
  - Returns error on file creation or write failure; flush errors surface on Close.

IMPLEMENTATION RULES:
  - Use bufio.Writer, strconv.AppendInt to avoid per-line allocations.

USAGE:
  err := output.WriteCounts("counts_h3.txt", counts)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Keep the format a bare integer per line; downstream scripts rely on it.
*/

package output

import (
	"bufio"
	"os"
	"strconv"
)

// WriteCounts writes one count per line to path, overwriting any existing file.
func WriteCounts(path string, counts []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 16)
	for _, c := range counts {
		buf = strconv.AppendInt(buf[:0], int64(c), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
