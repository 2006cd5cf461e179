package rsort

import (
	"math/bits"

	"github.com/katalvlaran/spmv/core"
)

// KeyType is the digit-selection mode a counting-sort pass uses: MOD
// for the low-order digit, DIV for the high-order one. It is an alias
// of core.KeyType so callers pass core.MOD / core.DIV directly.
type KeyType = core.KeyType

const (
	MOD = core.MOD
	DIV = core.DIV
)

// Radix returns the smallest power of two that is >= sqrt(n), per
// spec.md §4.1: this keeps both Key(DIV) and Key(MOD) a shift-and-mask
// (bitwise cheap) and balances auxiliary memory (O(sqrt(n))) against
// pass count (exactly two, MOD then DIV, for a full ascending sort).
//
// Complexity: O(log n) (one doubling of r per loop step).
func Radix(n int) int {
	if n <= 1 {
		return 1
	}
	// Smallest power of two r with r*r >= n, i.e. r >= sqrt(n).
	r := 1
	for r*r < n {
		r <<= 1
	}
	return r
}

// Key extracts the sort digit used by one counting-sort pass. DIV
// yields the high-order digit (v / radix); MOD yields the low-order
// digit (v mod radix). Both are bitwise since radix is a power of two,
// but Key does not assume that — it works for any positive radix.
func Key(v, radix int, kt KeyType) int {
	switch kt {
	case MOD:
		return v % radix
	case DIV:
		return v / radix
	default:
		panic("rsort: unknown KeyType")
	}
}

// NBins returns the number of buckets a pass over values in
// [0, n) needs for the given radix and keytype: radix for MOD (the
// low-order digit never exceeds radix-1), ceil(n/radix) for DIV (the
// high-order digit ranges over how many radix-sized blocks fit in n).
func NBins(n, radix int, kt KeyType) int {
	if kt == MOD {
		return radix
	}
	return (n + radix - 1) / radix
}

// RadixSortByField performs a full ascending stable sort of items by
// FieldVal, where every field value lies in [0, n). It is exactly
// two counting-sort passes, MOD then DIV (least-significant-digit
// radix sort, base = Radix(n)) — the "two passes of stable counting
// sort" spec.md §4.2 steps 2 and 4 each call for.
//
// Complexity: Theta(nz + sqrt(n)) time, Theta(nz + sqrt(n)) auxiliary
// memory, across both passes.
func RadixSortByField[T any](items []Item[T], n int) []Item[T] {
	radix := Radix(n)
	pass1 := CountingSort(items, radix, MOD)
	pass2 := CountingSort(pass1, radix, DIV)
	return pass2
}

// log2Ceil is retained for documentation purposes: it shows the
// alternative, bit-shift derivation of Radix for callers who want to
// reason about it as a power of two rather than a sqrt loop.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
