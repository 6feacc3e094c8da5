package ga

import "github.com/wlattner/silvae/tree"

// Config holds every tunable of the training run, populated via Option
// functions (CLI flags or a YAML file both build the same Config),
// mirroring wlattner/tree's functional-options Classifier configuration.
type Config struct {
	Fitness string // "linear"
	// FitnessParams[0] is epsilon, the stability perturbation magnitude.
	// FitnessParams[1..9] weight (no-info rate, correct, wrong, stable,
	// unstable, robust, vulnerable, fragile, broken) in that order, each
	// term normalized by sample count.
	FitnessParams [10]float64

	Select    string // "uniform" | "roulette-wheel"
	Crossover string // "one-point"

	Mutation                string // "none" | "grow" | "z"
	MutationBaseProbability float64
	MutationProbability     string // "constant" | "encourage-variance"

	PopulationInitialSize int
	PopulationMaxSize     int
	PopulationNextSize    string // "constant"
	PopulationGenerator   string // "blank" | "forest"
	// SeedTrees is consulted when PopulationGenerator == "forest": the
	// initial population is built by cycling through these trees,
	// copying as needed to reach PopulationInitialSize.
	SeedTrees []*tree.Tree

	MaxIteration int
	Elitism      int

	SplitSearchAggressiveness float64
	AllowedFeatures           string // "all" | "uniform"

	Seed int64
}

// DefaultConfig returns the baseline configuration: a blank initial
// population, uniform selection, one-point crossover, no mutation,
// constant population size, and equal-weighted fitness.
func DefaultConfig() Config {
	return Config{
		Fitness:                   "linear",
		FitnessParams:             [10]float64{0.01, 1, 1, 0, 1, 0, 1, 0, 1, 0},
		Select:                    "uniform",
		Crossover:                 "one-point",
		Mutation:                  "none",
		MutationBaseProbability:   0.1,
		MutationProbability:      "constant",
		PopulationInitialSize:     50,
		PopulationMaxSize:         50,
		PopulationNextSize:        "constant",
		PopulationGenerator:       "blank",
		MaxIteration:              100,
		Elitism:                   1,
		SplitSearchAggressiveness: 0.3,
		AllowedFeatures:           "all",
		Seed:                      0,
	}
}

// Option mutates a Config; Options are applied in order by New.
type Option func(*Config)

// WithFitness sets the fitness strategy name and its parameters.
func WithFitness(name string, params [10]float64) Option {
	return func(c *Config) {
		c.Fitness = name
		c.FitnessParams = params
	}
}

// WithSelect sets the parent selection strategy ("uniform" or
// "roulette-wheel").
func WithSelect(name string) Option {
	return func(c *Config) { c.Select = name }
}

// WithCrossover sets the crossover strategy ("one-point").
func WithCrossover(name string) Option {
	return func(c *Config) { c.Crossover = name }
}

// WithMutation sets the mutation strategy ("none", "grow", or "z").
func WithMutation(name string) Option {
	return func(c *Config) { c.Mutation = name }
}

// WithMutationProbability sets the mutation-probability strategy and
// its base probability.
func WithMutationProbability(name string, base float64) Option {
	return func(c *Config) {
		c.MutationProbability = name
		c.MutationBaseProbability = base
	}
}

// WithPopulationSize sets the initial and max population sizes.
func WithPopulationSize(initial, max int) Option {
	return func(c *Config) {
		c.PopulationInitialSize = initial
		c.PopulationMaxSize = max
	}
}

// WithPopulationGenerator sets the initial population generator
// ("blank" or "forest").
func WithPopulationGenerator(name string) Option {
	return func(c *Config) { c.PopulationGenerator = name }
}

// WithSeedTrees supplies the trees used when PopulationGenerator is
// "forest".
func WithSeedTrees(trees []*tree.Tree) Option {
	return func(c *Config) {
		c.PopulationGenerator = "forest"
		c.SeedTrees = trees
	}
}

// WithMaxIteration sets the number of generations to run.
func WithMaxIteration(n int) Option {
	return func(c *Config) { c.MaxIteration = n }
}

// WithElitism sets how many top individuals survive unmodified each
// generation.
func WithElitism(n int) Option {
	return func(c *Config) { c.Elitism = n }
}

// WithSplitSearchAggressiveness sets the probability a candidate
// threshold between any two projection values is evaluated during
// split search (tree.SearchSplit).
func WithSplitSearchAggressiveness(p float64) Option {
	return func(c *Config) { c.SplitSearchAggressiveness = p }
}

// WithAllowedFeatures sets the allowed-features strategy ("all" or
// "uniform").
func WithAllowedFeatures(name string) Option {
	return func(c *Config) { c.AllowedFeatures = name }
}

// WithSeed sets the PRNG seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// New builds a Config starting from DefaultConfig and applying opts in
// order.
func New(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
