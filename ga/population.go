package ga

import (
	"math/rand"
	"sort"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/tree"
)

// Individual is one member of a Population: a tree and its most
// recently computed fitness.
type Individual struct {
	Tree    *tree.Tree
	Fitness float64
}

// Population is a fitness-sorted (descending) collection of
// individuals.
type Population struct {
	Individuals []*Individual
}

// SortDescending orders Individuals by Fitness, highest first,
// matching the insertion-sort-ordered staging buffer the training loop
// swaps each generation into.
func (p *Population) SortDescending() {
	sort.SliceStable(p.Individuals, func(i, j int) bool {
		return p.Individuals[i].Fitness > p.Individuals[j].Fitness
	})
}

// initialPopulation builds the generation-0 population per
// cfg.PopulationGenerator.
func initialPopulation(cfg Config, d *dataset.Dataset) (*Population, error) {
	switch cfg.PopulationGenerator {
	case "forest":
		return initialPopulationForest(cfg, d)
	case "blank", "":
		return initialPopulationBlank(cfg, d)
	default:
		return nil, ErrUnknownOption
	}
}

// initialPopulationBlank seeds every individual as a single-leaf tree
// over the full dataset, the starting point growth/crossover build
// structure onto.
func initialPopulationBlank(cfg Config, d *dataset.Dataset) (*Population, error) {
	pop := &Population{Individuals: make([]*Individual, 0, cfg.PopulationInitialSize)}
	for i := 0; i < cfg.PopulationInitialSize; i++ {
		t, err := tree.New(d)
		if err != nil {
			return nil, err
		}
		pop.Individuals = append(pop.Individuals, &Individual{Tree: t})
	}
	return pop, nil
}

// initialPopulationForest seeds the population from cfg.SeedTrees,
// cycling through them (and deep-copying) to reach
// PopulationInitialSize.
func initialPopulationForest(cfg Config, d *dataset.Dataset) (*Population, error) {
	if len(cfg.SeedTrees) == 0 {
		return nil, ErrUnknownOption
	}
	pop := &Population{Individuals: make([]*Individual, 0, cfg.PopulationInitialSize)}
	for i := 0; i < cfg.PopulationInitialSize; i++ {
		src := cfg.SeedTrees[i%len(cfg.SeedTrees)]
		pop.Individuals = append(pop.Individuals, &Individual{Tree: tree.Copy(src)})
	}
	return pop, nil
}

// nextPopulationSize returns the population size for the next
// generation. Only the constant strategy is implemented: the
// population never grows or shrinks across generations.
func nextPopulationSize(cfg Config, current int) (int, error) {
	switch cfg.PopulationNextSize {
	case "constant", "":
		return current, nil
	default:
		return 0, ErrUnknownOption
	}
}

// allowedFeatures returns the feature indices a split search may
// choose from, per cfg.AllowedFeatures.
func allowedFeatures(cfg Config, nFeatures int, rng *rand.Rand) ([]int, error) {
	switch cfg.AllowedFeatures {
	case "all", "":
		all := make([]int, nFeatures)
		for i := range all {
			all[i] = i
		}
		return all, nil
	case "uniform":
		// a random non-empty subset, each feature included independently
		// with probability 0.5
		var subset []int
		for len(subset) == 0 {
			subset = subset[:0]
			for i := 0; i < nFeatures; i++ {
				if rng.Float64() < 0.5 {
					subset = append(subset, i)
				}
			}
		}
		return subset, nil
	default:
		return nil, ErrUnknownOption
	}
}
