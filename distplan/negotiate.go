package distplan

import (
	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
)

// negotiateInbox runs the third round of mv_init's v-plan construction:
// every rank tells each owner it depends on exactly which of that
// owner's local indices it wants, in the fixed order it will expect
// them back in. The owner stores that as its own Inbox — the schedule
// the kernel replays, unchanged, for every matvec invocation.
//
// Complexity: one AllToAllVariable round of O(ncols) volume.
func negotiateInbox(p *comm.Process, groups []Group) ([]Group, error) {
	size := p.Size()

	counts := make([]int, size)
	var flat []int
	for _, g := range groups {
		counts[g.Proc] = len(g.Remote)
		flat = append(flat, g.Remote...)
	}

	recvCounts, recvData, err := comm.AllToAllVariable(p, counts, flat)
	if err != nil {
		return nil, err
	}

	var inbox []Group
	offset := 0
	for src := 0; src < size; src++ {
		n := recvCounts[src]
		if n == 0 {
			continue
		}
		indices := recvData[offset : offset+n]
		offset += n
		inbox = append(inbox, Group{
			Proc:   core.Rank(src),
			Remote: indices, // this rank's own local indices, wanted by src
		})
	}
	return inbox, nil
}
