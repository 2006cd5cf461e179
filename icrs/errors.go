package icrs

import "errors"

// ErrDuplicateNonzero is returned by Convert when two input triples
// share the same (row, col) pair; this system tolerates no duplicates
// (spec.md Non-goals).
var ErrDuplicateNonzero = errors.New("icrs: duplicate nonzero")
