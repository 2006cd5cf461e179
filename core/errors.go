// Package core: sentinel error set shared by every package in this
// module. All algorithms MUST return these sentinels (wrapped with
// fmt.Errorf("%s: %w", ...) for context) and tests MUST check them via
// errors.Is, never by comparing strings.
package core

import "errors"

var (
	// ErrBadShape is returned when a requested matrix or vector shape is
	// invalid (e.g. n<=0, or rows/cols <= 0 for a local block).
	ErrBadShape = errors.New("core: invalid shape")

	// ErrNonSquare signals that the top-level matrix was required to be
	// square (m == n per §6) but the input file declared otherwise.
	ErrNonSquare = errors.New("core: matrix is not square")

	// ErrOutOfRange indicates a local or global index outside its valid
	// bounds (row, column, or processor rank).
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrProcCountMismatch indicates a file-declared processor count
	// disagrees with comm.World's actual size.
	ErrProcCountMismatch = errors.New("core: processor count mismatch")

	// ErrOutOfOrder indicates a vector-distribution file listed its
	// global indices out of the required ascending 1..n order.
	ErrOutOfOrder = errors.New("core: vector index out of order")

	// ErrDuplicateNonzero indicates two triples share (row, col); this
	// system tolerates no duplicates (spec Non-goals).
	ErrDuplicateNonzero = errors.New("core: duplicate nonzero")
)

// AbortCode is one of the four distinguished negative exit codes §6
// defines for the runtime's abort primitive, plus AbortIOError for the
// I/O-error category §7 describes as "detected lazily when the runtime
// primitive fails" — every loader parse failure that isn't one of the
// four named configuration/format codes still must abort the world
// with some code, not just fail on rank 0 and leave every other rank
// blocked on the following collective.
type AbortCode int

const (
	// AbortProcCountMismatch: matrix file's declared p disagrees with
	// comm.World size.
	AbortProcCountMismatch AbortCode = -8
	// AbortNonSquare: matrix file declared m != n.
	AbortNonSquare AbortCode = -9
	// AbortVectorProcMismatch: vector file's declared p disagrees with
	// comm.World size.
	AbortVectorProcMismatch AbortCode = -10
	// AbortOutOfOrder: vector file listed indices out of order.
	AbortOutOfOrder AbortCode = -11
	// AbortIOError: any other fatal condition that doesn't match one of
	// the four named codes above — a loader's truncated file or
	// non-numeric token, an out-of-range proc index, or the plan
	// builder's directory finding no registered owner for a queried
	// global index.
	AbortIOError AbortCode = -1
)
