package ga

import "math/rand"

// Select picks one parent from pop per cfg.Select.
func Select(cfg Config, pop *Population, rng *rand.Rand) (*Individual, error) {
	switch cfg.Select {
	case "uniform", "":
		return selectUniform(pop, rng), nil
	case "roulette-wheel":
		return selectRouletteWheel(pop, rng), nil
	default:
		return nil, ErrUnknownOption
	}
}

func selectUniform(pop *Population, rng *rand.Rand) *Individual {
	return pop.Individuals[rng.Intn(len(pop.Individuals))]
}

// selectRouletteWheel compares one draw p against each individual's own
// fitness share of the total, in population order, returning the first
// individual whose share p does not exceed -- rather than accumulating
// a running cumulative sum across the population. This reproduces the
// original trainer's roulette-wheel selection exactly, skew and all:
// whichever individual happens to be first in population order with a
// share at least p wins, regardless of how small its share is relative
// to those preceding it. When the population's total fitness is zero,
// individual 0 is returned, same as the source.
func selectRouletteWheel(pop *Population, rng *rand.Rand) *Individual {
	var sum float64
	for _, ind := range pop.Individuals {
		sum += ind.Fitness
	}
	if sum == 0 {
		return pop.Individuals[0]
	}

	p := rng.Float64()
	for _, ind := range pop.Individuals {
		if ind.Fitness/sum >= p {
			return ind
		}
	}
	// no individual's share reached p (with the non-cumulative
	// comparison this happens whenever p exceeds every share): return
	// the last individual rather than nil.
	return pop.Individuals[len(pop.Individuals)-1]
}
