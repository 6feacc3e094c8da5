package tree

import (
	"strings"
	"testing"

	"github.com/wlattner/silvae/dataset"
)

func TestComputePerformancePerfectStableTree(t *testing.T) {
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

	tr, _ := New(d)
	tr.Split(tr.Root, 0, 0.5)

	perf := tr.ComputePerformance(d, 0.05)
	if perf.Correct != 6 {
		t.Error("expected all 6 samples correct, got:", perf.Correct)
	}
	if perf.Stable != 6 {
		t.Error("expected all 6 samples stable at small epsilon, got:", perf.Stable)
	}
	if perf.Robust != 6 {
		t.Error("expected all 6 samples robust, got:", perf.Robust)
	}
}

func TestComputePerformanceUnstableNearBoundary(t *testing.T) {
	csv := `# 2 1
a,0.49
b,0.51
`
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	tr, _ := New(d)
	tr.Split(tr.Root, 0, 0.5)

	// epsilon large enough that both samples' boxes reach across the
	// threshold -> unstable at both points
	perf := tr.ComputePerformance(d, 0.1)
	if perf.Unstable != 2 {
		t.Error("expected both boundary samples unstable, got unstable:", perf.Unstable)
	}
}
