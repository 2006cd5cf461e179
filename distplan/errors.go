package distplan

import "errors"

// ErrUnownedIndex indicates the directory received a query for a
// global index no processor ever published ownership of — a violation
// of the "ownership is total and unique" invariant (spec.md §3),
// reachable from a malformed vector-distribution file that leaves some
// column or row unowned. resolve aborts the world with
// core.AbortIOError when this happens, so every other rank's pending
// answer exchange unblocks instead of deadlocking.
var ErrUnownedIndex = errors.New("distplan: queried index has no registered owner")
