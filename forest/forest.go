package forest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/tree"
	"github.com/wlattner/silvae/tree/silva"
)

// Forest is an ordered list of trees, all bound to the same Dataset.
// It is a storage/transport grouping, not a bagged ensemble: there is
// no vote aggregation here, only assembly and disassembly of tree
// files (see cmd/silvae-forest-tools).
type Forest struct {
	Trees []*tree.Tree
}

// Add appends t to the forest.
func (f *Forest) Add(t *tree.Tree) {
	f.Trees = append(f.Trees, t)
}

// Load reads the "classifier-forest <n>" format: a header giving the
// tree count, followed by that many concatenated silva tree records,
// each bound to d.
func Load(r io.Reader, d *dataset.Dataset) (*Forest, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() || sc.Text() != "classifier-forest" {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedForest)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing tree count", ErrMalformedForest)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: bad tree count: %v", ErrMalformedForest, err)
	}

	// The remainder of the stream is n concatenated tree records with no
	// marker between them; scannerReader re-exposes the already-tokenized
	// word scanner as an io.Reader so silva.Load can pull exactly the
	// tokens of one tree record at a time, leaving the scanner positioned
	// at the start of the next.
	tr := &scannerReader{sc: sc}

	f := &Forest{Trees: make([]*tree.Tree, 0, n)}
	for i := 0; i < n; i++ {
		t, err := silva.Load(tr, d)
		if err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrMalformedForest, i, err)
		}
		f.Add(t)
	}

	return f, nil
}

// scannerReader adapts a *bufio.Scanner already split on words into an
// io.Reader, so silva.Load can pull space-separated tokens from it and
// forest.Load can share one token stream across multiple concatenated
// tree records.
type scannerReader struct {
	sc   *bufio.Scanner
	rest []byte
}

func (s *scannerReader) Read(p []byte) (int, error) {
	if len(s.rest) == 0 {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		s.rest = append(s.sc.Bytes(), ' ')
	}
	n := copy(p, s.rest)
	s.rest = s.rest[n:]
	return n, nil
}

// Save writes the "classifier-forest <n>" header followed by each
// tree's silva record, in order.
func Save(w io.Writer, f *Forest) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "classifier-forest %d\n", len(f.Trees)); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	for _, t := range f.Trees {
		if err := silva.Save(w, t); err != nil {
			return err
		}
	}
	return nil
}
