// Package rsort provides the stable counting sort that the converter
// (package icrs) uses to bring an unordered batch of sparse triples
// into ascending order by row or by column.
//
// The shape of the algorithm — build a histogram, turn it into bucket
// starts with an exclusive prefix sum, then scatter elements into those
// buckets while advancing per-bucket cursors — mirrors the histogram/
// prefix-sum/scatter radix pass used for numeric sorting elsewhere in
// the retrieved pack (a SIMD LSD radix sort over plain integer slices);
// this package keeps that shape but sorts items that carry an arbitrary
// payload (the converter's (row, col, value) triples) by an integer
// field, digit by digit via Key, and guarantees stability, which a
// single in-place SIMD pass does not.
package rsort
