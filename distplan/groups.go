package distplan

import "github.com/katalvlaran/spmv/core"

// Group batches every local slot (a column slot for the v-plan, a row
// slot for the u-plan) that names the same remote processor, in
// ascending slot order. It is the unit the kernel's fan-out/fan-in
// communicate in: one message per Group, not one per slot, which is
// exactly the "send at most once per distinct destination processor"
// requirement spec.md §4.4 makes a hard design constraint.
type Group struct {
	Proc   core.Rank
	Slots  []int // this rank's own local slot indices, ascending
	Remote []int // the matching remote local index for each slot
}

// GroupByOwner buckets [0, len(owner)) by owner[slot], preserving
// ascending slot order within each bucket, and returns the buckets
// ordered by ascending Proc so iteration is deterministic.
//
// Complexity: O(len(owner) + size) time and memory.
func GroupByOwner(owner []core.Rank, remoteLocal []int, size int) []Group {
	perProc := make([][]int, size)
	perProcRemote := make([][]int, size)
	for slot, proc := range owner {
		perProc[proc] = append(perProc[proc], slot)
		perProcRemote[proc] = append(perProcRemote[proc], remoteLocal[slot])
	}

	groups := make([]Group, 0, size)
	for proc := 0; proc < size; proc++ {
		if len(perProc[proc]) == 0 {
			continue
		}
		groups = append(groups, Group{
			Proc:   core.Rank(proc),
			Slots:  perProc[proc],
			Remote: perProcRemote[proc],
		})
	}
	return groups
}
