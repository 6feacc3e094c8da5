package tree

import "github.com/wlattner/silvae/dataset"

// Performance tallies joint accuracy/stability counters over a dataset.
// Robust/vulnerable/fragile/broken are the four cross-products of
// correct-or-wrong with stable-or-unstable.
type Performance struct {
	Samples int

	Correct int
	Wrong   int

	Stable   int
	Unstable int

	Robust     int // correct and stable
	Vulnerable int // wrong and stable
	Fragile    int // correct and unstable
	Broken     int // wrong and unstable
}

// IsStable walks every leaf reachable from the root under a symmetric
// perturbation box of radius epsilon around point: from each node on
// the worklist, it descends left if point[feature]-epsilon <= threshold
// and descends right if point[feature]+epsilon > threshold (both may
// hold at once). It reports false as soon as any reachable leaf's
// majority set differs from reference.
func (t *Tree) IsStable(point []float64, epsilon float64, reference func(n *Node) bool) bool {
	var s nodeStack
	s.Push(t.Root)

	for !s.Empty() {
		n := s.Pop()
		if n.IsLeaf() {
			if !reference(n) {
				return false
			}
			continue
		}

		v := point[n.Feature]
		if v-epsilon <= n.Threshold && n.Left != nil {
			s.Push(n.Left)
		}
		if v+epsilon > n.Threshold && n.Right != nil {
			s.Push(n.Right)
		}
	}
	return true
}

// ComputePerformance evaluates t over every sample in d, classifying
// trueLabel as correct only when the classified majority set has
// exactly one member and it is trueLabel, and calling IsStable with the
// given epsilon to decide stability.
func (t *Tree) ComputePerformance(d *dataset.Dataset, epsilon float64) Performance {
	var perf Performance
	perf.Samples = len(d.Points)

	for i, point := range d.Points {
		label := d.Labels[i]
		maj := t.Classify(point)
		correct := maj.Cardinality() == 1 && maj.IsSet(label)

		stable := t.IsStable(point, epsilon, func(n *Node) bool {
			return n.Majority.Equal(maj)
		})

		if correct {
			perf.Correct++
		} else {
			perf.Wrong++
		}
		if stable {
			perf.Stable++
		} else {
			perf.Unstable++
		}

		switch {
		case correct && stable:
			perf.Robust++
		case !correct && stable:
			perf.Vulnerable++
		case correct && !stable:
			perf.Fragile++
		default:
			perf.Broken++
		}
	}

	return perf
}
