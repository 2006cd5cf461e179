// Package kernel implements mv, the distributed sparse matrix-vector
// product of spec.md §4.4: fan-out the pieces of v each processor's
// local block of columns needs, walk the local ICRS block computing
// partial row sums, then fan-in those partial sums into the owning
// processors' slice of u.
//
// Both data phases move through comm.AllToAllVariable, built once from
// a *distplan.Plan so the per-iteration call carries only values, never
// routing metadata — fan-out replays the v-plan's negotiated Inbox
// schedule, fan-in tags each value with its destination's local index
// since no such negotiation exists on the u-plan side. A barrier closes
// every invocation, so no processor can race ahead into the next call
// before every other processor has finished consuming this one's
// messages (spec.md §4.4's ordering guarantee).
package kernel
