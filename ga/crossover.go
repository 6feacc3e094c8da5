package ga

import (
	"math/rand"

	"github.com/wlattner/silvae/tree"
)

// Crossover combines parent1 and parent2 into one offspring per
// cfg.Crossover.
func Crossover(cfg Config, parent1, parent2 *tree.Tree, rng *rand.Rand) (*tree.Tree, error) {
	switch cfg.Crossover {
	case "one-point", "":
		return crossoverOnePoint(parent1, parent2, rng), nil
	default:
		return nil, ErrUnknownOption
	}
}

// chooseSubtree performs a leaf-biased random walk from root: at each
// internal node it descends left with probability 0.3, right with
// probability 0.3, and otherwise stops at the current node.
func chooseSubtree(root *tree.Node, rng *rand.Rand) *tree.Node {
	n := root
	for !n.IsLeaf() {
		p := rng.Float64()
		switch {
		case p < 0.3 && n.Left != nil:
			n = n.Left
		case p < 0.6 && n.Right != nil:
			n = n.Right
		default:
			return n
		}
	}
	return n
}

// crossoverOnePoint grafts a randomly chosen subtree of parent2 onto a
// randomly chosen node of a copy of parent1, then rebuilds the
// offspring's sample partition.
//
// The graft takes the chosen node's place on whichever side of its
// parent that node was; the sibling subtree is left untouched.
func crossoverOnePoint(parent1, parent2 *tree.Tree, rng *rand.Rand) *tree.Tree {
	child := tree.Copy(parent1)

	target := chooseSubtree(child.Root, rng)
	donor := chooseSubtree(parent2.Root, rng)
	graft := tree.CopySubtree(donor)

	switch {
	case target.Parent == nil:
		graft.Parent = nil
		child.Root = graft
	default:
		graft.Parent = target.Parent
		if target.Parent.Left == target {
			target.Parent.Left = graft
		} else {
			target.Parent.Right = graft
		}
	}

	child.Rebuild()
	return child
}
