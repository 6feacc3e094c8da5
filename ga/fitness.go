package ga

import (
	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/tree"
)

// Fitness scores t against d using cfg's fitness strategy.
func Fitness(cfg Config, t *tree.Tree, d *dataset.Dataset) (float64, error) {
	switch cfg.Fitness {
	case "linear", "":
		return fitnessLinear(t, d, cfg.FitnessParams), nil
	default:
		return 0, ErrUnknownOption
	}
}

// fitnessLinear weights (no-info rate, correct, wrong, stable, unstable,
// robust, vulnerable, fragile, broken) by params[1..9], each term
// divided by the sample count; params[0] is epsilon, the perturbation
// magnitude passed to performance evaluation. The no-info term is
// 1 - (stable+unstable)/n, which is 0 by construction since every
// sample classifies as stable or unstable, but is carried as its own
// weighted term to match the original fitness_linear layout.
func fitnessLinear(t *tree.Tree, d *dataset.Dataset, params [10]float64) float64 {
	epsilon := params[0]
	perf := t.ComputePerformance(d, epsilon)

	n := float64(perf.Samples)
	if n == 0 {
		return 0
	}

	noInfo := 1 - float64(perf.Stable+perf.Unstable)/n

	counters := [9]float64{
		noInfo,
		float64(perf.Correct),
		float64(perf.Wrong),
		float64(perf.Stable),
		float64(perf.Unstable),
		float64(perf.Robust),
		float64(perf.Vulnerable),
		float64(perf.Fragile),
		float64(perf.Broken),
	}

	var sum float64
	for i, c := range counters {
		sum += params[i+1] * (c / n)
	}
	return sum
}
