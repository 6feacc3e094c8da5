package silva

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/internal/bitset"
	"github.com/wlattner/silvae/tree"
)

// reader tokenizes the silva format on whitespace; newlines carry no
// structural meaning, matching the original format's whitespace-
// agnostic grammar.
type reader struct {
	sc *bufio.Scanner
}

func newReader(r io.Reader) *reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &reader{sc: sc}
}

func (r *reader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedTree, err)
		}
		return "", fmt.Errorf("%w: unexpected end of input", ErrMalformedTree)
	}
	return r.sc.Text(), nil
}

func (r *reader) expect(tok string) error {
	got, err := r.next()
	if err != nil {
		return err
	}
	if got != tok {
		return fmt.Errorf("%w: expected %q, got %q", ErrMalformedTree, tok, got)
	}
	return nil
}

func (r *reader) int() (int, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	return v, nil
}

func (r *reader) float() (float64, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	return v, nil
}

// Load reads a single tree bound to d. d must have the same feature
// count and label vocabulary the tree was saved with.
func Load(r io.Reader, d *dataset.Dataset) (*tree.Tree, error) {
	tr := newReader(r)

	if err := tr.expect("classifier-decision-tree"); err != nil {
		return nil, err
	}
	spaceSize, err := tr.int()
	if err != nil {
		return nil, err
	}
	nLabels, err := tr.int()
	if err != nil {
		return nil, err
	}
	if spaceSize != d.NFeatures || nLabels != d.NLabels() {
		return nil, fmt.Errorf("%w: tree has %d features/%d labels, dataset has %d/%d",
			ErrLabelMismatch, spaceSize, nLabels, d.NFeatures, d.NLabels())
	}

	for i := 0; i < nLabels; i++ {
		name, err := tr.next()
		if err != nil {
			return nil, err
		}
		if name != d.LabelNames[i] {
			return nil, fmt.Errorf("%w: label %d is %q in file, %q in dataset",
				ErrLabelMismatch, i, name, d.LabelNames[i])
		}
	}

	t, err := tree.New(d)
	if err != nil {
		return nil, err
	}

	if err := parseNode(tr, t, t.Root, nLabels); err != nil {
		return nil, err
	}

	return t, nil
}

func parseNode(tr *reader, t *tree.Tree, n *tree.Node, nLabels int) error {
	tok, err := tr.next()
	if err != nil {
		return err
	}

	switch tok {
	case "SPLIT":
		feature, err := tr.int()
		if err != nil {
			return err
		}
		threshold, err := tr.float()
		if err != nil {
			return err
		}

		switch t.Split(n, feature, threshold) {
		case tree.SplitBoth:
			if err := parseNode(tr, t, n.Left, nLabels); err != nil {
				return err
			}
			return parseNode(tr, t, n.Right, nLabels)

		case tree.SplitLeft:
			// every sample in this dataset stayed left; the right
			// subtree recorded in the file has no samples behind it
			// here, so its tokens are consumed and discarded.
			n.Feature, n.Threshold = feature, threshold
			left := &tree.Node{Parent: n, First: n.First, Last: n.Last}
			t.ComputeStats(left)
			n.Left = left
			if err := parseNode(tr, t, left, nLabels); err != nil {
				return err
			}
			return skipNode(tr, nLabels)

		case tree.SplitRight:
			n.Feature, n.Threshold = feature, threshold
			right := &tree.Node{Parent: n, First: n.First, Last: n.Last}
			t.ComputeStats(right)
			n.Right = right
			if err := skipNode(tr, nLabels); err != nil {
				return err
			}
			return parseNode(tr, t, right, nLabels)
		}
		return nil

	case "LEAF":
		freq := make([]float64, nLabels)
		for i := range freq {
			tok, err := tr.float()
			if err != nil {
				return err
			}
			freq[i] = tok
		}
		setLeafFreq(n, freq)
		return nil

	case "LEAF_LOGARITHMIC":
		logv := make([]float64, nLabels)
		for i := range logv {
			tok, err := tr.float()
			if err != nil {
				return err
			}
			logv[i] = tok
		}
		freq := make([]float64, nLabels)
		for i, lv := range logv {
			freq[i] = math.Exp(lv)
		}
		setLeafFreq(n, freq)
		return nil

	default:
		return fmt.Errorf("%w: unexpected record %q", ErrMalformedTree, tok)
	}
}

// skipNode discards an entire subtree's tokens without constructing
// any nodes, used when a split collapses and one side's stored
// structure is unreachable from the bound dataset.
func skipNode(tr *reader, nLabels int) error {
	tok, err := tr.next()
	if err != nil {
		return err
	}
	switch tok {
	case "SPLIT":
		if _, err := tr.int(); err != nil {
			return err
		}
		if _, err := tr.float(); err != nil {
			return err
		}
		if err := skipNode(tr, nLabels); err != nil {
			return err
		}
		return skipNode(tr, nLabels)
	case "LEAF", "LEAF_LOGARITHMIC":
		for i := 0; i < nLabels; i++ {
			if _, err := tr.float(); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected record %q", ErrMalformedTree, tok)
	}
}

// setLeafFreq overrides a node's stats with explicit frequencies read
// from a file, used for leaves whose original sample counts may not be
// recoverable by re-scanning whatever dataset the tree is now bound to.
func setLeafFreq(n *tree.Node, freq []float64) {
	total := 0.0
	for _, f := range freq {
		total += f
	}

	prob := make([]float64, len(freq))
	maxP := -1.0
	for i, f := range freq {
		if total > 0 {
			prob[i] = f / total
		}
		if prob[i] > maxP {
			maxP = prob[i]
		}
	}

	intFreq := make([]int, len(freq))
	var maj bitset.Bitmask
	for i, p := range prob {
		intFreq[i] = int(math.Round(freq[i]))
		if maxP > 0 && p == maxP {
			maj = maj.Set(i)
		}
	}

	n.Freq = intFreq
	n.Prob = prob
	n.Majority = maj
}

// Save writes t in the silva tree format: a header naming the feature
// and label counts, the label vocabulary, then a pre-order walk of
// SPLIT/LEAF records.
func Save(w io.Writer, t *tree.Tree) error {
	bw := bufio.NewWriter(w)

	nLabels := t.Dataset.NLabels()
	if _, err := fmt.Fprintf(bw, "classifier-decision-tree %d %d\n", t.Dataset.NFeatures, nLabels); err != nil {
		return err
	}
	for _, name := range t.Dataset.LabelNames {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return err
		}
	}

	if err := saveNode(bw, t.Root, nLabels); err != nil {
		return err
	}

	return bw.Flush()
}

// saveNode writes a pre-order walk of root. A SPLIT record is always
// followed by exactly two subtree records, even for a node loaded with
// only one live child (see parseNode's degenerate-split handling): the
// missing side is written as an all-zero LEAF placeholder, since its
// original contents were already discarded at load time.
func saveNode(w *bufio.Writer, root *tree.Node, nLabels int) error {
	stack := []*tree.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == nil {
			if _, err := fmt.Fprint(w, "LEAF"); err != nil {
				return err
			}
			for i := 0; i < nLabels; i++ {
				if _, err := fmt.Fprint(w, " 0"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}

		if n.IsLeaf() {
			if _, err := fmt.Fprint(w, "LEAF"); err != nil {
				return err
			}
			for _, f := range n.Freq {
				if _, err := fmt.Fprintf(w, " %d", f); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "SPLIT %d %v\n", n.Feature, n.Threshold); err != nil {
			return err
		}
		stack = append(stack, n.Right)
		stack = append(stack, n.Left)
	}

	return nil
}
