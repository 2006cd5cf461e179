package distplan

import (
	"fmt"

	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
)

// queryMsg is one Resolve-phase question: "who owns Global, and where
// should the answer land" (QuerierRank/QuerierSlot identify the asking
// processor and the plan slot it asked on behalf of).
type queryMsg struct {
	QuerierRank int
	QuerierSlot int
	Global      int
}

// answerMsg is the directory's reply to one queryMsg.
type answerMsg struct {
	QuerierSlot int
	Owner       int
	Local       int
}

// resolve is Phase 2 of mv_init: every processor asks, for each entry
// of localIndexMap (its own ColIndex or RowIndex), the directory
// processor for that global index who owns it — then the directory
// replies directly to the asker. Two AllToAllVariable rounds: queries
// out, answers back.
//
// Complexity: O(k) local work (k = len(localIndexMap)) to bucket
// queries, two AllToAllVariable rounds of O(k + n/p) total volume.
func resolve(p *comm.Process, dir map[int]core.Owner, localIndexMap []int) ([]core.Owner, error) {
	size := p.Size()
	self := int(p.Rank())

	qCounts := make([]int, size)
	qBuckets := make([][]queryMsg, size)
	for slot, g := range localIndexMap {
		d := directoryOwner(g, size)
		qBuckets[d] = append(qBuckets[d], queryMsg{QuerierRank: self, QuerierSlot: slot, Global: g})
		qCounts[d]++
	}
	var qFlat []queryMsg
	for d := 0; d < size; d++ {
		qFlat = append(qFlat, qBuckets[d]...)
	}

	_, recvQueries, err := comm.AllToAllVariable(p, qCounts, qFlat)
	if err != nil {
		return nil, err
	}

	// This rank is now acting as directory for the queries it just
	// received; look each one up and bucket the replies by querier.
	aCounts := make([]int, size)
	aBuckets := make([][]answerMsg, size)
	for _, q := range recvQueries {
		owner, ok := dir[q.Global]
		if !ok {
			resolveErr := fmt.Errorf("distplan.resolve: global index %d: %w", q.Global, ErrUnownedIndex)
			p.Abort(int(core.AbortIOError), resolveErr.Error())
			return nil, resolveErr
		}
		aBuckets[q.QuerierRank] = append(aBuckets[q.QuerierRank], answerMsg{
			QuerierSlot: q.QuerierSlot,
			Owner:       int(owner.Proc),
			Local:       owner.Local,
		})
		aCounts[q.QuerierRank]++
	}
	var aFlat []answerMsg
	for d := 0; d < size; d++ {
		aFlat = append(aFlat, aBuckets[d]...)
	}

	_, recvAnswers, err := comm.AllToAllVariable(p, aCounts, aFlat)
	if err != nil {
		return nil, err
	}

	owners := make([]core.Owner, len(localIndexMap))
	for _, ans := range recvAnswers {
		owners[ans.QuerierSlot] = core.Owner{Proc: core.Rank(ans.Owner), Local: ans.Local}
	}
	return owners, nil
}
