// Package tree implements the axis-aligned binary decision tree data
// model: in-place splitting over a contiguous sample range, pruning,
// classification, and pairwise similarity.
package tree

import (
	"math"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/internal/bitset"
)

func log2(x float64) float64 { return math.Log(x) / math.Log(2) }

// SplitResult reports what node_split-style in-place partitioning
// actually did: a degenerate split sends every sample to one side, in
// which case no children are attached.
type SplitResult int

const (
	// SplitBoth attached both a left and a right child.
	SplitBoth SplitResult = iota
	// SplitLeft means every sample in range stayed on the left; no
	// children were attached, the node remains a leaf.
	SplitLeft
	// SplitRight means every sample in range moved to the right; no
	// children were attached, the node remains a leaf.
	SplitRight
)

// Node is one node of a Tree. Leaves have Left == nil && Right == nil.
// A node's sample range is [First, Last] inclusive, indexing into the
// owning Tree's Order permutation.
type Node struct {
	Parent, Left, Right *Node

	Feature   int
	Threshold float64

	First, Last int // inclusive range into Tree.Order

	Freq     []int     // per-label sample counts over [First, Last]
	Prob     []float64 // Freq normalized by n samples
	Majority bitset.Bitmask
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// N returns the number of samples in n's range.
func (n *Node) N() int {
	return n.Last - n.First + 1
}

// Tree is a single axis-aligned binary decision tree bound to a
// Dataset. Order is a permutation of sample indices into Dataset,
// reordered in place as nodes are split; node ranges index into Order,
// never into Dataset directly.
type Tree struct {
	Root    *Node
	Order   []int
	Dataset *dataset.Dataset
}

// New builds a single-leaf (root-only) tree spanning every sample in d.
func New(d *dataset.Dataset) (*Tree, error) {
	n := len(d.Points)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if d.NLabels() > bitset.MaxLabels {
		return nil, ErrTooManyLabels
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	t := &Tree{Order: order, Dataset: d}
	root := &Node{First: 0, Last: n - 1}
	t.ComputeStats(root)
	t.Root = root

	return t, nil
}

// ComputeStats recomputes Freq/Prob/Majority for n from its current
// [First, Last] range over t.Order. Exported for tree/silva, which
// must build degenerate single-child nodes by hand while loading.
func (t *Tree) ComputeStats(n *Node) {
	nLabels := t.Dataset.NLabels()
	freq := make([]int, nLabels)
	for i := n.First; i <= n.Last; i++ {
		freq[t.Dataset.Labels[t.Order[i]]]++
	}

	prob := make([]float64, nLabels)
	total := float64(n.N())
	maxFreq := 0
	for l, f := range freq {
		if total > 0 {
			prob[l] = float64(f) / total
		}
		if f > maxFreq {
			maxFreq = f
		}
	}

	var maj bitset.Bitmask
	if maxFreq > 0 {
		for l, f := range freq {
			if f == maxFreq {
				maj = maj.Set(l)
			}
		}
	}

	n.Freq = freq
	n.Prob = prob
	n.Majority = maj
}

// Split partitions n's sample range in place on (feature <= threshold)
// and, unless the split is degenerate, attaches Left/Right children
// with their own stats. It reports which case occurred.
func (t *Tree) Split(n *Node, feature int, threshold float64) SplitResult {
	i, j := n.First, n.Last
	points := t.Dataset.Points

	for i <= j {
		s := t.Order[i]
		if points[s][feature] > threshold {
			t.Order[i], t.Order[j] = t.Order[j], t.Order[i]
			j--
		} else {
			i++
		}
	}
	// j is now the last index of the left partition; [First, j] went
	// left, [j+1, Last] went right.

	if j == n.Last {
		return SplitLeft
	}
	if j < n.First {
		return SplitRight
	}

	n.Feature = feature
	n.Threshold = threshold

	left := &Node{Parent: n, First: n.First, Last: j}
	right := &Node{Parent: n, First: j + 1, Last: n.Last}
	t.ComputeStats(left)
	t.ComputeStats(right)

	n.Left = left
	n.Right = right

	return SplitBoth
}

// Prune discards n's children, collapsing n back into a leaf. n's own
// Freq/Prob/Majority are unaffected.
func (n *Node) Prune() {
	n.Left = nil
	n.Right = nil
}

// Depth returns the number of edges from the root to n.
func (n *Node) Depth() int {
	d := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		d++
	}
	return d
}

// NReachableNodes returns the total number of nodes in the subtree
// rooted at n (n included).
func NReachableNodes(n *Node) int {
	count := 0
	var s nodeStack
	s.Push(n)
	for !s.Empty() {
		cur := s.Pop()
		count++
		if cur.Left != nil {
			s.Push(cur.Left)
		}
		if cur.Right != nil {
			s.Push(cur.Right)
		}
	}
	return count
}

// ReachableLeaves returns every leaf in the subtree rooted at n.
func ReachableLeaves(n *Node) []*Node {
	var leaves []*Node
	var s nodeStack
	s.Push(n)
	for !s.Empty() {
		cur := s.Pop()
		if cur.IsLeaf() {
			leaves = append(leaves, cur)
			continue
		}
		if cur.Left != nil {
			s.Push(cur.Left)
		}
		if cur.Right != nil {
			s.Push(cur.Right)
		}
	}
	return leaves
}

// Classify walks from the root to a leaf for point, descending left
// when point[feature] <= threshold and right otherwise. A node loaded
// from a file whose split was degenerate against the dataset it was
// loaded with may carry only one child; Classify follows whichever child
// is actually present rather than panicking on the missing side.
func (t *Tree) Classify(point []float64) bitset.Bitmask {
	n := t.Root
	for !n.IsLeaf() {
		goLeft := point[n.Feature] <= n.Threshold
		switch {
		case goLeft && n.Left != nil:
			n = n.Left
		case !goLeft && n.Right != nil:
			n = n.Right
		case n.Left != nil:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return n.Majority
}

// Entropy returns n's label-distribution entropy in bits, 0 for a pure
// or empty node.
func (n *Node) Entropy() float64 {
	var h float64
	for _, p := range n.Prob {
		if p > 0 {
			h -= p * log2(p)
		}
	}
	return h
}

// Similarity reports the fraction of d's samples for which t1 and t2
// produce bit-identical majority label sets.
func Similarity(t1, t2 *Tree, d *dataset.Dataset) float64 {
	if len(d.Points) == 0 {
		return 0
	}
	match := 0
	for _, p := range d.Points {
		if t1.Classify(p).Equal(t2.Classify(p)) {
			match++
		}
	}
	return float64(match) / float64(len(d.Points))
}
