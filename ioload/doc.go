// Package ioload implements the two external loaders spec.md §6
// specifies only as contracts: the matrix-triple file and the
// vector-distribution file, both read once by rank 0 and distributed
// to their owning processors over the comm primitives.
//
// No third-party parsing library appears anywhere in the retrieved
// example pack for this kind of line-oriented integer/float format, so
// both loaders read with bufio.Scanner and strconv, the stdlib route
// every example repo would reach for here too.
package ioload
