package rsort

// Item pairs the integer field a pass sorts by (a global row or column
// index) with an arbitrary payload that must move with it. The
// converter's payload is a core.Triple; tests also sort plain ints to
// check the algorithm in isolation.
type Item[T any] struct {
	FieldVal int
	Payload  T
}

// CountingSort performs one stable counting-sort pass of items by
// Key(item.FieldVal, radix, kt), per spec.md §4.1:
//
//  1. count occurrences per bucket (histogram),
//  2. turn counts into bucket starts via an exclusive prefix sum,
//  3. emit items into a fresh slice at advancing per-bucket cursors,
//     which is what makes the pass stable — items with equal keys keep
//     their relative order because the cursor for their shared bucket
//     only ever advances.
//
// Complexity: Theta(len(items) + nbins) time and auxiliary memory,
// where nbins = NBins(n, radix, kt).
func CountingSort[T any](items []Item[T], radix int, kt KeyType) []Item[T] {
	if len(items) == 0 {
		return items
	}

	nbins := nbinsForItems(items, radix, kt)
	count := make([]int, nbins)
	for _, it := range items {
		count[Key(it.FieldVal, radix, kt)]++
	}

	// Exclusive prefix sum: count[b] becomes the starting cursor for
	// bucket b.
	start := 0
	for b := range count {
		c := count[b]
		count[b] = start
		start += c
	}

	out := make([]Item[T], len(items))
	for _, it := range items {
		b := Key(it.FieldVal, radix, kt)
		out[count[b]] = it
		count[b]++
	}
	return out
}

// nbinsForItems sizes the histogram to cover every field value present,
// never less than NBins(0, radix, kt) would give for an empty input.
func nbinsForItems[T any](items []Item[T], radix int, kt KeyType) int {
	maxField := 0
	for _, it := range items {
		if it.FieldVal > maxField {
			maxField = it.FieldVal
		}
	}
	n := NBins(maxField+1, radix, kt)
	if kt == MOD {
		return radix
	}
	return n
}
