package comm

import "github.com/katalvlaran/spmv/core"

// Process is one SPMD rank's handle onto its World. All of Rank,
// Size, Barrier, the generic collectives in collectives.go, Send/Recv
// in p2p.go, WallTime and Abort are driven through it.
type Process struct {
	world *World
	rank  int

	// callSeq is this rank's local count of collective calls made so
	// far. Under SPMD lockstep (every rank executes the same sequence
	// of collective calls, differing only in the data each carries)
	// callSeq is identical, call for call, across every rank — which is
	// exactly what lets World.rendezvous match up contributions from
	// different goroutines without any naming scheme beyond call order.
	callSeq int64
}

// Rank returns this process's rank, 0 <= Rank() < Size().
func (p *Process) Rank() core.Rank { return core.Rank(p.rank) }

// Size returns the total number of simulated processes.
func (p *Process) Size() int { return p.world.Size() }

// WallTime returns seconds elapsed since the World was created.
func (p *Process) WallTime() float64 { return p.world.WallTime() }

// Abort signals every process in the World to unblock with an
// AbortError carrying code and reason, per spec.md §6/§7. It does not
// itself terminate the calling goroutine; callers must return an error
// up their own call stack so cmd/spmv can report the code and exit
// nonzero once every rank has unwound.
func (p *Process) Abort(code int, reason string) {
	p.world.signalAbort(code, reason)
}

// Barrier blocks until every process has called Barrier for this
// point in program order.
func (p *Process) Barrier() error {
	_, err := p.rendezvous(nil)
	return err
}

// rendezvous is the shared entry point every collective funnels
// through: it stamps the call with this rank's next call-sequence
// number and lets World.rendezvous do the actual synchronization.
func (p *Process) rendezvous(contribution any) ([]any, error) {
	idx := p.callSeq
	p.callSeq++
	return p.world.rendezvous(idx, p.rank, contribution)
}
