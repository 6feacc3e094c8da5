package tree

import "fmt"

// ErrTooManyLabels is returned when a dataset bound to a tree has more
// labels than a single Bitmask can represent.
var ErrTooManyLabels = fmt.Errorf("tree: too many labels")

// ErrEmptyDataset is returned when a tree is built over zero samples.
var ErrEmptyDataset = fmt.Errorf("tree: empty dataset")
