package tree

// Copy returns a deep, independent copy of t: a new Tree with its own
// Order slice and Node graph, sharing the same Dataset. Used by the
// genetic algorithm to produce offspring without mutating parents.
func Copy(t *Tree) *Tree {
	order := make([]int, len(t.Order))
	copy(order, t.Order)

	nt := &Tree{Order: order, Dataset: t.Dataset}
	nt.Root = copyNode(t.Root, nil)
	return nt
}

// CopySubtree returns a standalone deep copy of the subtree rooted at
// n, detached from any parent (Parent == nil on the returned root).
func CopySubtree(n *Node) *Node {
	return copyNode(n, nil)
}

func copyNode(n *Node, parent *Node) *Node {
	cp := &Node{
		Parent:    parent,
		Feature:   n.Feature,
		Threshold: n.Threshold,
		First:     n.First,
		Last:      n.Last,
		Majority:  n.Majority,
	}
	cp.Freq = append([]int(nil), n.Freq...)
	cp.Prob = append([]float64(nil), n.Prob...)

	if n.Left != nil {
		cp.Left = copyNode(n.Left, cp)
	}
	if n.Right != nil {
		cp.Right = copyNode(n.Right, cp)
	}
	return cp
}
