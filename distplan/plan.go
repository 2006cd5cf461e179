package distplan

import (
	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
)

// BuildPlan runs the two-phase directory protocol of spec.md §4.3 and
// returns the routing table for one vector's local index map:
//
//   - for the v-plan, localIndexMap is the local->global ColIndex from
//     icrs.Convert and ownLocalToGlobal is this rank's own slice of
//     the v-distribution (local index -> global index);
//   - for the u-plan, the same call is made with RowIndex and this
//     rank's own slice of the u-distribution.
//
// After BuildPlan returns, for every slot c: the processor named
// Plan.Proc[c] owns localIndexMap[c] as its Plan.Local[c]'th local
// component (spec.md §8 property 4).
//
// BuildPlan must be called by every rank of p's World in the same
// program order (once for v, once for u) — it is built from
// collectives, and collectives deadlock on a straggler.
//
// Complexity: O(nv + ncols) local work, O(n/p + ncols) communication
// volume, per spec.md §4.3.
func BuildPlan(p *comm.Process, localIndexMap []int, ownLocalToGlobal []int) (*Plan, error) {
	dir, err := publish(p, ownLocalToGlobal)
	if err != nil {
		return nil, err
	}

	owners, err := resolve(p, dir, localIndexMap)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Proc:  make([]core.Rank, len(owners)),
		Local: make([]int, len(owners)),
		Owned: len(ownLocalToGlobal),
	}
	for i, o := range owners {
		plan.Proc[i] = o.Proc
		plan.Local[i] = o.Local
	}
	return plan, nil
}

// BuildVPlan builds the fan-out routing table for v: colIndex is this
// rank's local->global ICRS ColIndex, vLocalToGlobal is this rank's own
// slice of the v-distribution. Beyond ownership resolution, it runs one
// further negotiation round so the kernel's per-iteration gather never
// has to re-send which indices are wanted (spec.md §4.4 phase 1).
//
// Complexity: BuildPlan's cost plus one AllToAllVariable round of
// O(ncols) volume.
func BuildVPlan(p *comm.Process, colIndex []int, vLocalToGlobal []int) (*Plan, error) {
	plan, err := BuildPlan(p, colIndex, vLocalToGlobal)
	if err != nil {
		return nil, err
	}
	plan.Groups = GroupByOwner(plan.Proc, plan.Local, p.Size())

	inbox, err := negotiateInbox(p, plan.Groups)
	if err != nil {
		return nil, err
	}
	plan.Inbox = inbox
	return plan, nil
}

// BuildUPlan builds the fan-in routing table for u: rowIndex is this
// rank's local->global ICRS RowIndex, uLocalToGlobal is this rank's own
// slice of the u-distribution. No negotiation round is needed: every
// local row slot already has a value to contribute, so the producer
// never has to ask before it can send (spec.md §4.4 phase 3).
//
// Complexity: BuildPlan's cost, no further communication.
func BuildUPlan(p *comm.Process, rowIndex []int, uLocalToGlobal []int) (*Plan, error) {
	plan, err := BuildPlan(p, rowIndex, uLocalToGlobal)
	if err != nil {
		return nil, err
	}
	plan.Groups = GroupByOwner(plan.Proc, plan.Local, p.Size())
	return plan, nil
}
