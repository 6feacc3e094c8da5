// Package stats computes the descriptive statistics reported by
// cmd/silvae-tree-info, backed by gonum's stat package rather than
// hand-rolled percentile/variance code.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of one sample of values.
type Summary struct {
	Min, Max           float64
	Q1, Median, Q3     float64
	Mean, Variance     float64
}

// Summarize computes a Summary over values. values is not mutated; a
// sorted copy is made internally since stat.Quantile requires sorted
// input.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return Summary{
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Q1:       stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:       stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Mean:     stat.Mean(sorted, nil),
		Variance: stat.Variance(sorted, nil),
	}
}
