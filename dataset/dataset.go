// Package dataset loads the CSV training data format and computes the
// per-feature sorted-unique projections the split candidate search
// samples thresholds from.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/wlattner/silvae/internal/bitset"
)

// Dataset holds a loaded training set: one label and one feature vector
// per sample, plus the label vocabulary and per-feature projections
// derived from it.
type Dataset struct {
	Points [][]float64 // Points[i][j] is feature j of sample i
	Labels []int       // Labels[i] indexes into LabelNames

	LabelNames []string // label index -> original CSV token, first-seen order
	NFeatures  int

	// Projections[j] is the sorted, duplicate-free list of values
	// feature j takes across the dataset.
	Projections [][]float64
}

// NLabels returns the number of distinct labels in the dataset.
func (d *Dataset) NLabels() int {
	return len(d.LabelNames)
}

// Load reads the CSV dataset format described in spec.md §6: a header
// line "# <rows> <cols>" or "# <format> <rows> <cols>" (only format 0,
// CSV, is supported), followed by <rows> lines of "label,f1,f2,...,fC".
func Load(r io.Reader) (*Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			line++
			l := strings.TrimSpace(sc.Text())
			if l == "" {
				continue
			}
			return l, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: empty file", ErrMalformedInput)}
	}

	rows, cols, err := parseHeader(header)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	d := &Dataset{
		Points:    make([][]float64, 0, rows),
		Labels:    make([]int, 0, rows),
		NFeatures: cols,
	}
	labelIdx := make(map[string]int)

	for i := 0; i < rows; i++ {
		l, ok := nextLine()
		if !ok {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedInput, rows, i)}
		}

		tok := strings.Split(l, ",")
		if len(tok) != cols+1 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: expected %d columns, got %d", ErrMalformedInput, cols+1, len(tok))}
		}

		label := strings.TrimSpace(tok[0])
		idx, seen := labelIdx[label]
		if !seen {
			idx = len(d.LabelNames)
			labelIdx[label] = idx
			d.LabelNames = append(d.LabelNames, label)
		}
		d.Labels = append(d.Labels, idx)

		point := make([]float64, cols)
		for j, s := range tok[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %v", ErrMalformedInput, err)}
			}
			point[j] = v
		}
		d.Points = append(d.Points, point)
	}

	if d.NLabels() > bitset.MaxLabels {
		return nil, ErrTooManyLabels
	}

	d.Projections = computeProjections(d.Points, cols)

	return d, nil
}

// parseHeader accepts both "# rows cols" and "# format rows cols",
// distinguishing them by how many integers follow the '#'.
func parseHeader(line string) (rows, cols int, err error) {
	line = strings.TrimPrefix(line, "#")
	fields := strings.Fields(line)

	switch len(fields) {
	case 2:
		rows, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad row count", ErrMalformedInput)
		}
		cols, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad column count", ErrMalformedInput)
		}
		return rows, cols, nil
	case 3:
		format, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad format field", ErrMalformedInput)
		}
		if format != 0 {
			return 0, 0, ErrUnsupportedFormat
		}
		rows, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad row count", ErrMalformedInput)
		}
		cols, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad column count", ErrMalformedInput)
		}
		return rows, cols, nil
	default:
		return 0, 0, fmt.Errorf("%w: malformed header %q", ErrMalformedInput, line)
	}
}

// computeProjections returns, for each feature, the sorted list of
// distinct values that feature takes across all points.
func computeProjections(points [][]float64, cols int) [][]float64 {
	proj := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		vals := make([]float64, len(points))
		for i, p := range points {
			vals[i] = p[j]
		}
		sort.Float64s(vals)

		uniq := vals[:0:0]
		for i, v := range vals {
			if i == 0 || v != vals[i-1] {
				uniq = append(uniq, v)
			}
		}
		proj[j] = uniq
	}
	return proj
}
