package ga

import (
	"math"
	"math/rand"

	"github.com/wlattner/silvae/tree"
)

// MutationProbability returns the probability that an individual is
// mutated this generation, per cfg.MutationProbability.
func MutationProbability(cfg Config, pop *Population) (float64, error) {
	switch cfg.MutationProbability {
	case "constant", "":
		return cfg.MutationBaseProbability, nil
	case "encourage-variance":
		return mutationProbabilityEncourageVariance(cfg, pop), nil
	default:
		return 0, ErrUnknownOption
	}
}

// mutationProbabilityEncourageVariance scales the base probability up
// as the population's fitness coefficient of variation shrinks, so a
// converged population mutates more aggressively.
func mutationProbabilityEncourageVariance(cfg Config, pop *Population) float64 {
	n := len(pop.Individuals)
	if n == 0 {
		return cfg.MutationBaseProbability
	}

	var mean float64
	for _, ind := range pop.Individuals {
		mean += ind.Fitness
	}
	mean /= float64(n)

	var variance float64
	for _, ind := range pop.Individuals {
		d := ind.Fitness - mean
		variance += d * d
	}
	variance /= float64(n)

	cv := math.Sqrt(variance)
	if mean != 0 {
		cv /= math.Abs(mean)
	}

	p := cfg.MutationBaseProbability / (cv + 0.01)
	if p > 1 {
		p = 1
	}
	return p
}

// Mutate applies cfg.Mutation to a copy of t, returning the mutated
// offspring.
func Mutate(cfg Config, t *tree.Tree, allowed []int, rng *rand.Rand) (*tree.Tree, error) {
	switch cfg.Mutation {
	case "none", "":
		return mutationNone(t), nil
	case "grow":
		return mutationGrow(cfg, t, allowed, rng), nil
	case "z":
		return mutationZ(cfg, t, allowed, rng), nil
	default:
		return nil, ErrUnknownOption
	}
}

// mutationNone leaves the tree structurally unchanged.
func mutationNone(t *tree.Tree) *tree.Tree {
	return tree.Copy(t)
}

// mutationGrow walks down the tree with an entropy-weighted random
// choice at every internal node (favoring the higher-entropy, less
// pure child) until it reaches a leaf, then attempts one new split
// there via split candidate search.
func mutationGrow(cfg Config, t *tree.Tree, allowed []int, rng *rand.Rand) *tree.Tree {
	child := tree.Copy(t)
	n := entropyWalk(child.Root, rng)

	if cand, ok := child.SearchSplit(n, allowed, cfg.SplitSearchAggressiveness, rng); ok {
		child.Split(n, cand.Feature, cand.Threshold)
	}
	return child
}

// mutationZ walks down with the same entropy-weighted choice as grow,
// but at each internal node visited may instead prune that node back
// to a leaf, biased by how pure it already is: a near-pure node is
// pruned (simplifying the tree), a high-entropy node is descended
// into. A prune ends the mutation. Reaching a leaf without pruning, it
// attempts a new split exactly as grow does.
func mutationZ(cfg Config, t *tree.Tree, allowed []int, rng *rand.Rand) *tree.Tree {
	child := tree.Copy(t)

	n := child.Root
	for !n.IsLeaf() {
		purity := 1 - n.Entropy()/maxEntropy(len(n.Prob))
		if rng.Float64() < purity {
			n.Prune()
			return child
		}
		n = entropyStep(n, rng)
	}

	if cand, ok := child.SearchSplit(n, allowed, cfg.SplitSearchAggressiveness, rng); ok {
		child.Split(n, cand.Feature, cand.Threshold)
	}
	return child
}

// entropyWalk descends from n to a leaf, at each internal node
// preferring the child with higher entropy (less pure, more room to
// usefully split further).
func entropyWalk(n *tree.Node, rng *rand.Rand) *tree.Node {
	for !n.IsLeaf() {
		n = entropyStep(n, rng)
	}
	return n
}

// entropyStep picks one child of n, choosing each child with
// probability proportional to its entropy (evenly when both are pure).
func entropyStep(n *tree.Node, rng *rand.Rand) *tree.Node {
	if n.Right == nil {
		return n.Left
	}
	if n.Left == nil {
		return n.Right
	}

	hl, hr := n.Left.Entropy(), n.Right.Entropy()
	total := hl + hr
	if total == 0 {
		if rng.Float64() < 0.5 {
			return n.Left
		}
		return n.Right
	}
	if rng.Float64() < hl/total {
		return n.Left
	}
	return n.Right
}

// maxEntropy is the entropy of a uniform distribution over n labels.
func maxEntropy(nLabels int) float64 {
	if nLabels <= 1 {
		return 1
	}
	return math.Log(float64(nLabels)) / math.Log(2)
}
