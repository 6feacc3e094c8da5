package ga

import (
	"strings"
	"testing"

	"github.com/wlattner/silvae/dataset"
)

const csv = `# 10 1
a,0.05
a,0.10
a,0.15
a,0.20
a,0.25
b,0.75
b,0.80
b,0.85
b,0.90
b,0.95
`

func loadTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestTrainImprovesFitness(t *testing.T) {
	d := loadTestDataset(t)
	cfg := New(
		WithPopulationSize(8, 8),
		WithMaxIteration(5),
		WithMutation("grow"),
		WithMutationProbability("constant", 0.5),
		WithElitism(1),
		WithSeed(42),
		WithSplitSearchAggressiveness(1.0),
	)

	status, err := NewStatus(cfg, d)
	if err != nil {
		t.Fatal(err)
	}
	status.OnIteration = nil // silence logging during tests

	initialBest := status.Population.Individuals[0]
	_ = initialBest

	best, err := Train(status)
	if err != nil {
		t.Fatal(err)
	}
	if best == nil {
		t.Fatal("expected a non-nil best tree")
	}

	perf := best.ComputePerformance(d, cfg.FitnessParams[0])
	if perf.Correct == 0 {
		t.Error("expected the evolved tree to classify at least some samples correctly")
	}
}

func TestSelectRouletteWheelNoPanicOnZeroFitness(t *testing.T) {
	d := loadTestDataset(t)
	cfg := New(WithPopulationSize(4, 4), WithSelect("roulette-wheel"), WithSeed(1),
		WithFitness("linear", [10]float64{})) // all-zero weights: every fitness is 0

	status, err := NewStatus(cfg, d)
	if err != nil {
		t.Fatal(err)
	}
	if err := status.evaluate(status.Population); err != nil {
		t.Fatal(err)
	}

	ind, err := Select(cfg, status.Population, status.Rng)
	if err != nil {
		t.Fatal(err)
	}
	if ind == nil {
		t.Error("expected a selected individual")
	}
}
