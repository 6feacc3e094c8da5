package forest

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

	t1, _ := tree.New(d)
	t1.Split(t1.Root, 0, 0.5)
	t2, _ := tree.New(d)

	f := &Forest{}
	f.Add(t1)
	f.Add(t2)

	var buf bytes.Buffer
	if err := Save(&buf, f); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(&buf, d)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded.Trees) != 2 {
		t.Fatalf("expected 2 trees, got %d", len(loaded.Trees))
	}
	if loaded.Trees[0].Root.IsLeaf() {
		t.Error("expected first tree to have a split root")
	}
	if !loaded.Trees[1].Root.IsLeaf() {
		t.Error("expected second tree to be a single leaf")
	}
}
