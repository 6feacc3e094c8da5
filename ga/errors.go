// Package ga evolves a population of decision trees with a genetic
// algorithm whose fitness jointly rewards classification accuracy and
// epsilon-stability.
package ga

import "fmt"

// ErrUnknownOption is returned when a config string names a strategy
// this package does not implement (e.g. an unrecognized --select value).
var ErrUnknownOption = fmt.Errorf("ga: unknown option")
