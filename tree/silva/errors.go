// Package silva reads and writes the textual decision-tree format:
// a "classifier-decision-tree <features> <labels>" header, the label
// vocabulary, and a pre-order walk of SPLIT/LEAF/LEAF_LOGARITHMIC
// records.
package silva

import "fmt"

// ErrMalformedTree is returned when a tree file does not match the
// expected header or record grammar.
var ErrMalformedTree = fmt.Errorf("silva: malformed tree")

// ErrLabelMismatch is returned when a tree file's feature count, label
// count or label names do not match the dataset it is being loaded
// against.
var ErrLabelMismatch = fmt.Errorf("silva: label mismatch")
