package dataset

import (
	"strings"
	"testing"
)

const sampleCSV = `# 4 2
a,0.1,0.2
b,0.3,0.1
a,0.1,0.4
b,0.5,0.1
`

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	if len(d.Points) != 4 {
		t.Error("expected 4 points, got:", len(d.Points))
	}
	if d.NFeatures != 2 {
		t.Error("expected 2 features, got:", d.NFeatures)
	}
	if d.NLabels() != 2 {
		t.Error("expected 2 labels, got:", d.NLabels())
	}
	if d.LabelNames[0] != "a" || d.LabelNames[1] != "b" {
		t.Error("expected labels in first-seen order [a b], got:", d.LabelNames)
	}
}

func TestLoadFormatHeader(t *testing.T) {
	csv := "# 0 4 2\n" + sampleCSV[len("# 4 2\n"):]
	d, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Points) != 4 {
		t.Error("expected 4 points, got:", len(d.Points))
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	csv := "# 1 4 2\n" + sampleCSV[len("# 4 2\n"):]
	_, err := Load(strings.NewReader(csv))
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestProjections(t *testing.T) {
	d, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	// feature 0 values: 0.1, 0.3, 0.1, 0.5 -> unique sorted: 0.1, 0.3, 0.5
	want := []float64{0.1, 0.3, 0.5}
	got := d.Projections[0]
	if len(got) != len(want) {
		t.Fatalf("expected %d projection values, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("projection[0][%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLoadMalformedHeader(t *testing.T) {
	_, err := Load(strings.NewReader("not a header\n"))
	if err == nil {
		t.Error("expected error for malformed header")
	}
}

func TestLoadTooFewRows(t *testing.T) {
	_, err := Load(strings.NewReader("# 2 2\na,0.1,0.2\n"))
	if err == nil {
		t.Error("expected error when fewer rows than declared")
	}
}
