// Package forest holds an ordered collection of trees and the
// "classifier-forest" textual format used to persist it.
package forest

import "fmt"

// ErrMalformedForest is returned when a forest file does not match the
// expected header or a contained tree fails to parse.
var ErrMalformedForest = fmt.Errorf("forest: malformed forest")
