package distplan

import "github.com/katalvlaran/spmv/core"

// Plan is one side of a fan-out/fan-in routing table: for local slot i
// (a column slot for the v-plan, a row slot for the u-plan), Proc[i]
// is the owning processor of the matching vector component and
// Local[i] is that component's local index on Proc[i]. Both slices
// have the same length as the local index map (ColIndex or RowIndex)
// the plan was built from.
type Plan struct {
	Proc  []core.Rank
	Local []int

	// Owned is the length of this rank's own slice of the distribution
	// the plan was resolved against (len(ownLocalToGlobal) passed to
	// BuildPlan) — the length MatVec's v (for a v-plan) or u (for a
	// u-plan) argument must have on this rank.
	Owned int

	// Groups is Proc/Local regrouped by remote processor, ascending
	// slot order preserved within each group. The kernel uses it to
	// turn the per-slot routing table into dense per-destination
	// arrays without re-deriving the grouping every iteration.
	Groups []Group

	// Inbox is only populated for a v-plan (built by BuildVPlan): for
	// every remote processor that requested data from this rank, the
	// ordered list of this rank's own local indices to send back each
	// invocation. It lets fan-out ship bare value arrays every
	// iteration instead of re-sending the request metadata — the cost
	// spec.md §1 calls out as amortized across invocations. A u-plan
	// leaves Inbox nil: fan-in messages are self-describing, so no
	// negotiation round is needed on that side.
	Inbox []Group
}

// Len returns the number of local slots this plan routes.
func (pl *Plan) Len() int { return len(pl.Proc) }
