// Command silvae-train evolves a decision tree classifier over a CSV
// dataset using the genetic algorithm in package ga, and writes the
// best individual found in the silva tree format.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/ga"
	"github.com/wlattner/silvae/internal/clierr"
	"github.com/wlattner/silvae/tree/silva"
)

// fileConfig mirrors ga.Config for YAML decoding; CLI flags that were
// explicitly set take precedence over a loaded file's values.
type fileConfig struct {
	Fitness                   string     `yaml:"fitness"`
	FitnessParams             [10]float64 `yaml:"fitness_params"`
	Select                    string     `yaml:"select"`
	Crossover                 string     `yaml:"crossover"`
	Mutation                  string     `yaml:"mutation"`
	MutationBaseProbability   float64    `yaml:"mutation_base_probability"`
	MutationProbability       string     `yaml:"mutation_probability"`
	PopulationInitialSize     int        `yaml:"population_initial_size"`
	PopulationMaxSize         int        `yaml:"population_max_size"`
	MaxIteration              int        `yaml:"max_iteration"`
	Elitism                   int        `yaml:"elitism"`
	SplitSearchAggressiveness float64    `yaml:"split_search_aggressiveness"`
	AllowedFeatures           string     `yaml:"allowed_features"`
	Seed                      int64      `yaml:"seed"`
}

func main() {
	var (
		dataFile   string
		outFile    string
		configFile string

		fitness       string
		epsilon       float64
		weights       []float64
		selectStrat   string
		crossover     string
		mutation      string
		mutationBase  float64
		mutationProb  string
		popInitial    int
		popMax        int
		maxIteration  int
		elitism       int
		aggressiveness float64
		allowedFeat   string
		seed          int64
		verbose       bool
	)

	root := &cobra.Command{
		Use:   "silvae-train",
		Short: "evolve a decision tree classifier with a genetic algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			f, err := os.Open(dataFile)
			if err != nil {
				return err
			}
			defer f.Close()

			d, err := dataset.Load(f)
			if err != nil {
				return err
			}

			cfg := ga.DefaultConfig()
			if configFile != "" {
				cfg, err = loadFileConfig(configFile, cfg)
				if err != nil {
					return err
				}
			}

			applyFlags(&cfg, cmd, fitness, epsilon, weights, selectStrat, crossover,
				mutation, mutationBase, mutationProb, popInitial, popMax, maxIteration,
				elitism, aggressiveness, allowedFeat, seed)

			status, err := ga.NewStatus(cfg, d)
			if err != nil {
				return err
			}

			best, err := ga.Train(status)
			if err != nil {
				return err
			}

			out, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer out.Close()

			return silva.Save(out, best)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&dataFile, "data", "d", "", "training data CSV file (required)")
	flags.StringVarP(&outFile, "output", "o", "tree.silva", "file to write the trained tree to")
	flags.StringVarP(&configFile, "config", "c", "", "optional YAML file with GA configuration")

	flags.StringVar(&fitness, "fitness", "linear", "fitness strategy")
	flags.Float64Var(&epsilon, "epsilon", 0.01, "stability perturbation magnitude")
	flags.Float64SliceVar(&weights, "weights", []float64{1, 1, 0, 1, 0, 1, 0, 1, 0},
		"9 fitness weights: no-info,correct,wrong,stable,unstable,robust,vulnerable,fragile,broken")
	flags.StringVar(&selectStrat, "select", "uniform", "parent selection strategy: uniform, roulette-wheel")
	flags.StringVar(&crossover, "crossover", "one-point", "crossover strategy")
	flags.StringVar(&mutation, "mutation", "none", "mutation strategy: none, grow, z")
	flags.Float64Var(&mutationBase, "mutation-base-probability", 0.1, "base mutation probability")
	flags.StringVar(&mutationProb, "mutation-probability", "constant", "mutation probability strategy: constant, encourage-variance")
	flags.IntVar(&popInitial, "population-initial-size", 50, "initial population size")
	flags.IntVar(&popMax, "population-max-size", 50, "max population size")
	flags.IntVar(&maxIteration, "max-iteration", 100, "number of generations")
	flags.IntVar(&elitism, "elitism", 1, "number of top individuals preserved unmodified each generation")
	flags.Float64Var(&aggressiveness, "split-search-aggressiveness", 0.3, "probability each candidate threshold is evaluated during split search")
	flags.StringVar(&allowedFeat, "allowed-features", "all", "allowed-features strategy: all, uniform")
	flags.Int64Var(&seed, "seed", 0, "PRNG seed")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.MarkFlagRequired("data")

	if err := root.Execute(); err != nil {
		clierr.Fatal(err)
	}
}

func loadFileConfig(path string, base ga.Config) (ga.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return base, err
	}

	if fc.Fitness != "" {
		base.Fitness = fc.Fitness
	}
	if fc.FitnessParams != ([10]float64{}) {
		base.FitnessParams = fc.FitnessParams
	}
	if fc.Select != "" {
		base.Select = fc.Select
	}
	if fc.Crossover != "" {
		base.Crossover = fc.Crossover
	}
	if fc.Mutation != "" {
		base.Mutation = fc.Mutation
	}
	if fc.MutationBaseProbability != 0 {
		base.MutationBaseProbability = fc.MutationBaseProbability
	}
	if fc.MutationProbability != "" {
		base.MutationProbability = fc.MutationProbability
	}
	if fc.PopulationInitialSize != 0 {
		base.PopulationInitialSize = fc.PopulationInitialSize
	}
	if fc.PopulationMaxSize != 0 {
		base.PopulationMaxSize = fc.PopulationMaxSize
	}
	if fc.MaxIteration != 0 {
		base.MaxIteration = fc.MaxIteration
	}
	if fc.Elitism != 0 {
		base.Elitism = fc.Elitism
	}
	if fc.SplitSearchAggressiveness != 0 {
		base.SplitSearchAggressiveness = fc.SplitSearchAggressiveness
	}
	if fc.AllowedFeatures != "" {
		base.AllowedFeatures = fc.AllowedFeatures
	}
	if fc.Seed != 0 {
		base.Seed = fc.Seed
	}

	return base, nil
}

// applyFlags overlays explicitly-set CLI flags onto cfg, so a YAML
// config file supplies defaults a flag can still override.
func applyFlags(cfg *ga.Config, cmd *cobra.Command, fitness string, epsilon float64,
	weights []float64, selectStrat, crossover, mutation string, mutationBase float64,
	mutationProb string, popInitial, popMax, maxIteration, elitism int,
	aggressiveness float64, allowedFeat string, seed int64) {

	changed := cmd.Flags().Changed

	if changed("fitness") {
		cfg.Fitness = fitness
	}
	if changed("epsilon") {
		cfg.FitnessParams[0] = epsilon
	}
	if changed("weights") {
		var w9 [9]float64
		copy(w9[:], weights)
		copy(cfg.FitnessParams[1:], w9[:])
	}
	if changed("select") {
		cfg.Select = selectStrat
	}
	if changed("crossover") {
		cfg.Crossover = crossover
	}
	if changed("mutation") {
		cfg.Mutation = mutation
	}
	if changed("mutation-base-probability") {
		cfg.MutationBaseProbability = mutationBase
	}
	if changed("mutation-probability") {
		cfg.MutationProbability = mutationProb
	}
	if changed("population-initial-size") {
		cfg.PopulationInitialSize = popInitial
	}
	if changed("population-max-size") {
		cfg.PopulationMaxSize = popMax
	}
	if changed("max-iteration") {
		cfg.MaxIteration = maxIteration
	}
	if changed("elitism") {
		cfg.Elitism = elitism
	}
	if changed("split-search-aggressiveness") {
		cfg.SplitSearchAggressiveness = aggressiveness
	}
	if changed("allowed-features") {
		cfg.AllowedFeatures = allowedFeat
	}
	if changed("seed") {
		cfg.Seed = seed
	}
}
