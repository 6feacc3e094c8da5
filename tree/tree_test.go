package tree

import (
	"strings"
	"testing"

	"github.com/wlattner/silvae/dataset"
)

func loadTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	csv := `# 6 1
a,0.1
a,0.2
a,0.3
b,0.7
b,0.8
b,0.9
`
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestNewTreeRootStats(t *testing.T) {
	d := loadTestDataset(t)
	tr, err := New(d)
	if err != nil {
		t.Fatal(err)
	}

	if tr.Root.N() != 6 {
		t.Error("expected root to span 6 samples, got:", tr.Root.N())
	}
	if tr.Root.Freq[0] != 3 || tr.Root.Freq[1] != 3 {
		t.Error("expected balanced 3/3 frequencies, got:", tr.Root.Freq)
	}
	// tie: both labels majority
	if tr.Root.Majority.Cardinality() != 2 {
		t.Error("expected a tied majority set, got cardinality:", tr.Root.Majority.Cardinality())
	}
}

func TestSplitBoth(t *testing.T) {
	d := loadTestDataset(t)
	tr, _ := New(d)

	res := tr.Split(tr.Root, 0, 0.5)
	if res != SplitBoth {
		t.Fatal("expected SplitBoth, got:", res)
	}
	if tr.Root.Left.N() != 3 || tr.Root.Right.N() != 3 {
		t.Error("expected 3/3 split, got left:", tr.Root.Left.N(), "right:", tr.Root.Right.N())
	}
	if tr.Root.Left.Majority.Cardinality() != 1 || !tr.Root.Left.Majority.IsSet(0) {
		t.Error("expected left child majority to be label 0")
	}
	if tr.Root.Right.Majority.Cardinality() != 1 || !tr.Root.Right.Majority.IsSet(1) {
		t.Error("expected right child majority to be label 1")
	}
}

func TestSplitDegenerate(t *testing.T) {
	d := loadTestDataset(t)
	tr, _ := New(d)

	res := tr.Split(tr.Root, 0, 10.0) // everything satisfies <= 10
	if res != SplitLeft {
		t.Error("expected SplitLeft for a threshold above all values, got:", res)
	}
	if !tr.Root.IsLeaf() {
		t.Error("expected root to remain a leaf on a degenerate split")
	}
}

func TestClassifyAndPrune(t *testing.T) {
	d := loadTestDataset(t)
	tr, _ := New(d)
	tr.Split(tr.Root, 0, 0.5)

	got := tr.Classify([]float64{0.15})
	if !got.IsSet(0) {
		t.Error("expected point 0.15 to classify to label 0")
	}

	tr.Root.Prune()
	if !tr.Root.IsLeaf() {
		t.Error("expected root to be a leaf after Prune")
	}
}

func TestSimilarityIdenticalTrees(t *testing.T) {
	d := loadTestDataset(t)
	t1, _ := New(d)
	t1.Split(t1.Root, 0, 0.5)
	t2, _ := New(d)
	t2.Split(t2.Root, 0, 0.5)

	if sim := Similarity(t1, t2, d); sim != 1.0 {
		t.Error("expected identical trees to have similarity 1.0, got:", sim)
	}
}

func TestReachableLeaves(t *testing.T) {
	d := loadTestDataset(t)
	tr, _ := New(d)
	tr.Split(tr.Root, 0, 0.5)

	leaves := ReachableLeaves(tr.Root)
	if len(leaves) != 2 {
		t.Error("expected 2 leaves, got:", len(leaves))
	}
	if n := NReachableNodes(tr.Root); n != 3 {
		t.Error("expected 3 reachable nodes, got:", n)
	}
}
