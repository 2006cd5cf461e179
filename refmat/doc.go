// Package refmat is a sequential, row-major reference matrix used only
// by tests: build it from the same global triples a distributed run
// was given, multiply it by a global vector directly, and compare
// against the gathered distributed result (spec.md §8 property 5). It
// carries none of the distributed machinery on purpose — it exists to
// be obviously correct, not efficient.
package refmat
