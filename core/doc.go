// Package core defines the domain types shared by every other package in
// this module: the sparse triple, the processor-rank type, and the
// dimension/shape validators (of which the converter and the reference
// matrix use ValidatePositive).
//
// There is no Graph here — unlike the library this module grew out of,
// the object under management is a distributed sparse matrix, addressed
// purely by (row, column) pairs and a processor count, never by named
// vertices or edges. core stays deliberately small: it exists so that
// rsort, icrs, distplan, kernel, comm and ioload can share one
// definition of "what a nonzero is" and one family of sentinel errors
// instead of five redefinitions of the same struct.
package core
