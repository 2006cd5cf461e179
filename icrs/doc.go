// Package icrs converts an unordered batch of local sparse triples
// (global row, global column, value) into Incremental Compressed Row
// Storage: a row-major traversal order plus a single increment array
// that doubles as a two-level iterator over (row, column).
//
// The conversion is two radix sorts (package rsort) bracketing two
// linear "walk and assign local index" passes, exactly as spec.md
// §4.2 lays out: sort by column to assign local column indices and
// rewrite columns in place, then sort by row (stable, so the
// column order survives within each row) to assign local row indices
// and compute the increment vector.
package icrs
