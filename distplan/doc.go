// Package distplan builds the fan-out/fan-in communication plans the
// kernel needs: for every local column slot, which processor owns the
// matching v-component and at what local index there; symmetrically,
// for every local row slot, which processor owns the matching
// u-component. This is mv_init from spec.md §4.3 — by line count the
// largest single piece of the system, because it is the one place
// where every processor's local knowledge (its own column/row map, its
// own slice of the vector-distribution) must be reconciled into a
// globally consistent answer without any processor ever seeing another
// processor's full state.
//
// The reference strategy is (B): a directory partition g -> g mod p of
// the global index space, built in two phases per vector (Publish:
// one variable-size personalized exchange; Resolve: two, queries out
// and answers back, all via comm.AllToAllVariable) — directly using
// the primitive spec.md §6
// lists, rather than the padded fixed-size batches spec.md's Design
// Notes describe as a workaround for runtimes that lack a true
// variable all-to-all.
//
// BuildVPlan and BuildUPlan both call BuildPlan for ownership
// resolution, then regroup the per-slot routing table by remote
// processor (GroupByOwner) so the kernel moves whole batches instead of
// one message per slot. The v-plan runs one further negotiation round
// (negotiateInbox) so an owner learns, once, exactly which of its local
// indices each dependent wants and in what order — after that, every
// matvec invocation ships bare value arrays with no per-iteration
// metadata. The u-plan skips this: a row's producer always has a value
// to contribute, so fan-in messages carry (local index, value) pairs
// and need no prior agreement.
package distplan
