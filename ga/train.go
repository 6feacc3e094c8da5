package ga

import (
	"math/rand"
	"sort"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/tree"
)

// Status tracks one training run's state and exposes callback hooks
// for the INIT -> (BEFORE_ITER -> ITER -> AFTER_ITER)^n -> END state
// machine. The default OnIteration structured-logs progress; callers
// may override any hook.
type Status struct {
	Config     Config
	Dataset    *dataset.Dataset
	Population *Population
	Generation int
	Rng        *rand.Rand

	OnStart           func(*Status)
	OnBeforeIteration func(*Status)
	OnIteration       func(*Status)
	OnEnd             func(*Status)
}

// NewStatus builds a Status with a generation-0 population, ready for
// Train.
func NewStatus(cfg Config, d *dataset.Dataset) (*Status, error) {
	pop, err := initialPopulation(cfg, d)
	if err != nil {
		return nil, err
	}

	return &Status{
		Config:     cfg,
		Dataset:    d,
		Population: pop,
		Rng:        rand.New(rand.NewSource(cfg.Seed)),
		OnIteration: func(s *Status) {
			logIteration(s)
		},
	}, nil
}

// Best returns the highest-fitness individual's tree in the current
// population (Population is kept fitness-sorted descending).
func (s *Status) Best() *tree.Tree {
	if len(s.Population.Individuals) == 0 {
		return nil
	}
	return s.Population.Individuals[0].Tree
}

func (s *Status) evaluate(pop *Population) error {
	for _, ind := range pop.Individuals {
		fit, err := Fitness(s.Config, ind.Tree, s.Dataset)
		if err != nil {
			return err
		}
		ind.Fitness = fit
	}
	return nil
}

func (s *Status) fire(hook func(*Status)) {
	if hook != nil {
		hook(s)
	}
}

// Train runs Config.MaxIteration generations of selection, crossover,
// optional mutation, and elitism, and returns the best individual
// found.
func Train(s *Status) (*tree.Tree, error) {
	if err := s.evaluate(s.Population); err != nil {
		return nil, err
	}
	s.Population.SortDescending()

	s.fire(s.OnStart)

	for gen := 0; gen < s.Config.MaxIteration; gen++ {
		s.Generation = gen
		s.fire(s.OnBeforeIteration)

		nextSize, err := nextPopulationSize(s.Config, len(s.Population.Individuals))
		if err != nil {
			return nil, err
		}

		staging := make([]*Individual, 0, nextSize)
		for i := 0; i < s.Config.Elitism && i < len(s.Population.Individuals); i++ {
			src := s.Population.Individuals[i]
			staging = append(staging, &Individual{Tree: src.Tree, Fitness: src.Fitness})
		}

		mutProb, err := MutationProbability(s.Config, s.Population)
		if err != nil {
			return nil, err
		}

		for len(staging) < nextSize {
			p1, err := Select(s.Config, s.Population, s.Rng)
			if err != nil {
				return nil, err
			}
			p2, err := Select(s.Config, s.Population, s.Rng)
			if err != nil {
				return nil, err
			}

			child, err := Crossover(s.Config, p1.Tree, p2.Tree, s.Rng)
			if err != nil {
				return nil, err
			}

			if s.Rng.Float64() < mutProb {
				allowed, err := allowedFeatures(s.Config, s.Dataset.NFeatures, s.Rng)
				if err != nil {
					return nil, err
				}
				child, err = Mutate(s.Config, child, allowed, s.Rng)
				if err != nil {
					return nil, err
				}
			}

			fit, err := Fitness(s.Config, child, s.Dataset)
			if err != nil {
				return nil, err
			}
			// insertion sort: the child goes before the first staged
			// individual whose fitness is <= its own
			pos := sort.Search(len(staging), func(k int) bool {
				return staging[k].Fitness <= fit
			})
			staging = append(staging, nil)
			copy(staging[pos+1:], staging[pos:])
			staging[pos] = &Individual{Tree: child, Fitness: fit}
		}

		next := &Population{Individuals: staging}
		next.SortDescending()
		s.Population = next

		s.fire(s.OnIteration)
	}

	s.fire(s.OnEnd)

	return s.Best(), nil
}
