package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readSamples parses whitespace-separated numbers. Text after '#' on a line
// is ignored. Lines have no length limit, so a single-row export is fine.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	line := 0
	for sc.Scan() {
		line++

		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid sample %q", line, field)
			}
			out = append(out, v)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	return out, nil
}

// writeColumns writes row i as cols[0][i] cols[1][i] ... for every row.
// All columns must have the same length.
func writeColumns(w io.Writer, cols [][]float64) error {
	if len(cols) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	fields := make([]string, len(cols))
	for i := range cols[0] {
		for c, col := range cols {
			fields[c] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
