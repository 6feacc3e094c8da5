package tree

// Rebuild re-partitions every node's sample range from scratch following
// the tree's existing Feature/Threshold structure. Genetic operators
// (crossover, mutation) manipulate tree structure in the abstract,
// without access to a valid sample partition; Rebuild is the step that
// makes a newly-assembled individual's Freq/Prob/Majority and Order
// partition consistent with its bound Dataset again, mirroring how the
// original trainer always reclassifies a whole dataset after producing
// a new individual.
func (t *Tree) Rebuild() {
	for i := range t.Order {
		t.Order[i] = i
	}
	t.Root.First, t.Root.Last = 0, len(t.Order)-1
	t.rebuildNode(t.Root)
}

// rebuildNode re-partitions n's range and recurses into its children.
// When a copied split turns out degenerate against the offspring's own
// sample distribution (every sample lands on one side), it does not
// materialize an empty-range sibling: it collapses n into whichever
// child's structure actually holds the samples and keeps trying from
// there, the split-operator equivalent of SPLIT_BOTH not occurring and
// expansion continuing in the non-empty side only.
func (t *Tree) rebuildNode(n *Node) {
	for {
		if n.Left == nil && n.Right == nil {
			t.ComputeStats(n)
			return
		}

		i, j := n.First, n.Last
		points := t.Dataset.Points
		for i <= j {
			s := t.Order[i]
			if points[s][n.Feature] > n.Threshold {
				t.Order[i], t.Order[j] = t.Order[j], t.Order[i]
				j--
			} else {
				i++
			}
		}

		if j == n.Last {
			collapseInto(n, n.Left)
			continue
		}
		if j < n.First {
			collapseInto(n, n.Right)
			continue
		}

		n.Left.First, n.Left.Last = n.First, j
		n.Right.First, n.Right.Last = j+1, n.Last
		t.rebuildNode(n.Left)
		t.rebuildNode(n.Right)
		t.ComputeStats(n)
		return
	}
}

// collapseInto replaces n's split structure with child's, discarding
// the other, now-empty side. If child is nil (n originally had only
// one live child and that side is the one that emptied out), n becomes
// a true leaf.
func collapseInto(n, child *Node) {
	if child == nil {
		n.Left, n.Right = nil, nil
		return
	}
	n.Feature, n.Threshold = child.Feature, child.Threshold
	n.Left, n.Right = child.Left, child.Right
	if n.Left != nil {
		n.Left.Parent = n
	}
	if n.Right != nil {
		n.Right.Parent = n
	}
}
