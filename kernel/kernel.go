package kernel

import (
	"fmt"

	"github.com/katalvlaran/spmv/comm"
)

// MatVec computes one u = A*v invocation. v is this rank's own local
// slice of the v-distribution (length matching what ownLocalToGlobal
// had when the v-plan was built); u is this rank's own local slice of
// the u-distribution and is zeroed, then filled, in place. Every rank
// in p's World must call MatVec the same number of times in the same
// order: it is built entirely from collectives.
//
// Complexity: O(M.NZ()) local arithmetic, O(M.NCols + M.NRows)
// communication volume, per spec.md §4.4.
func (k *Kernel) MatVec(p *comm.Process, v []float64, u []float64) error {
	if len(v) != k.VPlan.Owned {
		return fmt.Errorf("kernel.MatVec: len(v)=%d != owned v-slice length %d: %w", len(v), k.VPlan.Owned, ErrVectorLengthMismatch)
	}
	if len(u) != k.UPlan.Owned {
		return fmt.Errorf("kernel.MatVec: len(u)=%d != owned u-slice length %d: %w", len(u), k.UPlan.Owned, ErrVectorLengthMismatch)
	}

	vLocal, err := k.fanOut(p, v)
	if err != nil {
		return fmt.Errorf("kernel.MatVec: fan-out: %w", err)
	}

	uPartial := k.innerProduct(vLocal)

	if err := k.fanIn(p, uPartial, u); err != nil {
		return fmt.Errorf("kernel.MatVec: fan-in: %w", err)
	}

	if err := p.Barrier(); err != nil {
		return fmt.Errorf("kernel.MatVec: %w", err)
	}
	return nil
}

// fanOut gathers this rank's M.NCols-length column scratch buffer by
// replaying the v-plan's negotiated Inbox schedule: every owner sends
// exactly one message per dependent processor, carrying the requested
// values in the order that dependent asked for them.
func (k *Kernel) fanOut(p *comm.Process, v []float64) ([]float64, error) {
	size := p.Size()
	counts := make([]int, size)
	var data []float64
	for _, g := range k.VPlan.Inbox {
		counts[g.Proc] = len(g.Remote)
		for _, idx := range g.Remote {
			data = append(data, v[idx])
		}
	}

	recvCounts, recvData, err := comm.AllToAllVariable(p, counts, data)
	if err != nil {
		return nil, err
	}

	vLocal := make([]float64, k.M.NCols)
	offset := 0
	for _, g := range k.VPlan.Groups {
		n := recvCounts[g.Proc]
		seg := recvData[offset : offset+n]
		offset += n
		for i, slot := range g.Slots {
			vLocal[slot] = seg[i]
		}
	}
	return vLocal, nil
}

// innerProduct walks the local ICRS block with the same two-cursor
// state machine icrs.Walk uses, accumulating each nonzero's
// contribution directly into the owning local row's partial sum
// without reconstructing (row, col, value) triples.
func (k *Kernel) innerProduct(vLocal []float64) []float64 {
	uPartial := make([]float64, k.M.NRows)
	nz := k.M.NZ()
	if nz == 0 {
		return uPartial
	}

	row, col := 0, k.M.Inc[0]
	for kk := 0; kk < nz; kk++ {
		uPartial[row] += k.M.A[kk] * vLocal[col]
		col += k.M.Inc[kk+1]
		if col >= k.M.NCols {
			col -= k.M.NCols
			row++
		}
	}
	return uPartial
}

// fanIn scatters uPartial, the local row block's partial sums, to the
// processors that own each row, accumulating by local index on
// arrival. Messages are self-describing (local index, value) pairs, so
// no prior negotiation round is needed on this side.
func (k *Kernel) fanIn(p *comm.Process, uPartial []float64, u []float64) error {
	size := p.Size()
	counts := make([]int, size)
	var data []contribution
	for _, g := range k.UPlan.Groups {
		counts[g.Proc] = len(g.Slots)
		for i, slot := range g.Slots {
			data = append(data, contribution{Local: g.Remote[i], Val: uPartial[slot]})
		}
	}

	_, recvData, err := comm.AllToAllVariable(p, counts, data)
	if err != nil {
		return err
	}

	for i := range u {
		u[i] = 0
	}
	for _, c := range recvData {
		u[c.Local] += c.Val
	}
	return nil
}
