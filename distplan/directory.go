package distplan

import (
	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
)

// publishRecord is what Publish sends to a global index's directory
// processor: "I am Owner, and I hold global index Global at my local
// slot Local."
type publishRecord struct {
	Owner  int
	Global int
	Local  int
}

// directoryOwner returns the rank responsible for global index g, the
// g mod p partition spec.md §4.3 names as the reference directory.
func directoryOwner(g, size int) int {
	return g % size
}

// publish is Phase 1 of mv_init: every processor registers ownership
// of each of its own vector components with that component's directory
// processor, via one variable-size personalized exchange. It returns
// the slice of the directory this rank ended up holding: records for
// every global index g with g mod Size() == p.Rank().
//
// Complexity: O(nv) local work to bucket by destination, one
// AllToAllVariable round of O(n) total volume.
func publish(p *comm.Process, localToGlobal []int) (map[int]core.Owner, error) {
	size := p.Size()

	counts := make([]int, size)
	buckets := make([][]publishRecord, size)
	for local, g := range localToGlobal {
		d := directoryOwner(g, size)
		buckets[d] = append(buckets[d], publishRecord{Owner: int(p.Rank()), Global: g, Local: local})
		counts[d]++
	}

	var flat []publishRecord
	for d := 0; d < size; d++ {
		flat = append(flat, buckets[d]...)
	}

	_, recvData, err := comm.AllToAllVariable(p, counts, flat)
	if err != nil {
		return nil, err
	}

	dir := make(map[int]core.Owner, len(recvData))
	for _, rec := range recvData {
		dir[rec.Global] = core.Owner{Proc: core.Rank(rec.Owner), Local: rec.Local}
	}
	return dir, nil
}
