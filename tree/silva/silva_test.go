package silva

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/tree"
)

const csv = `# 6 1
a,0.1
a,0.2
a,0.3
b,0.7
b,0.8
b,0.9
`

func TestSaveLoadRoundTrip(t *testing.T) {
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	tr, _ := tree.New(d)
	tr.Split(tr.Root, 0, 0.5)

	var buf bytes.Buffer
	if err := Save(&buf, tr); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(&buf, d)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Root.IsLeaf() {
		t.Fatal("expected loaded tree to have a split root")
	}
	if loaded.Root.Feature != 0 || loaded.Root.Threshold != 0.5 {
		t.Error("expected loaded root split to match saved split, got feature:",
			loaded.Root.Feature, "threshold:", loaded.Root.Threshold)
	}

	for _, p := range d.Points {
		want := tr.Classify(p)
		got := loaded.Classify(p)
		if !want.Equal(got) {
			t.Errorf("classification mismatch for point %v: want %v got %v", p, want, got)
		}
	}
}

func TestLoadLabelMismatch(t *testing.T) {
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	other, err := dataset.Load(strings.NewReader(`# 2 1
x,0.1
y,0.2
`))
	if err != nil {
		t.Fatal(err)
	}

	tr, _ := tree.New(d)
	var buf bytes.Buffer
	if err := Save(&buf, tr); err != nil {
		t.Fatal(err)
	}

	_, err = Load(&buf, other)
	if err == nil {
		t.Error("expected label mismatch error")
	}
}
