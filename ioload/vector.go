package ioload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
)

// LoadVectorDistribution reads one vector-distribution file (spec.md
// §6 — called once for v, once for u) and distributes each
// processor's own slice of the ownership map to it. r is only read on
// rank 0; every other rank may pass nil. Returns this rank's
// local-index -> global-index slice and the declared n.
//
// A declared processor count disagreeing with p.Size() aborts with
// AbortVectorProcMismatch; a global index listed out of the required
// ascending 1..n order aborts with AbortOutOfOrder; any other parse
// failure (truncated file, non-numeric token, a proc index outside
// [1, p]) aborts with AbortIOError. Every path aborts before
// returning, so no other rank is left blocked on the following
// collective.
func LoadVectorDistribution(p *comm.Process, r io.Reader) ([]int, int, error) {
	size := p.Size()

	var n int
	var counts []int
	var flat []int

	if p.Rank() == 0 {
		hdrN, perOwner, err := parseVectorFile(r, size)
		if err != nil {
			code := core.AbortIOError
			switch {
			case errors.Is(err, errVectorProcMismatch):
				code = core.AbortVectorProcMismatch
			case errors.Is(err, errVectorOutOfOrder):
				code = core.AbortOutOfOrder
			}
			p.Abort(int(code), err.Error())
			return nil, 0, fmt.Errorf("ioload.LoadVectorDistribution: %w", err)
		}

		n = hdrN
		counts = make([]int, size)
		for d := 0; d < size; d++ {
			counts[d] = len(perOwner[d])
			flat = append(flat, perOwner[d]...)
		}
	}

	n, err := comm.Broadcast(p, 0, n)
	if err != nil {
		return nil, 0, fmt.Errorf("ioload.LoadVectorDistribution: %w", err)
	}

	if p.Rank() != 0 {
		counts = make([]int, size)
	}
	_, localToGlobal, err := comm.AllToAllVariable(p, counts, flat)
	if err != nil {
		return nil, 0, fmt.Errorf("ioload.LoadVectorDistribution: %w", err)
	}
	return localToGlobal, n, nil
}

var (
	errVectorProcMismatch = fmt.Errorf("%w", core.ErrProcCountMismatch)
	errVectorOutOfOrder   = fmt.Errorf("%w", core.ErrOutOfOrder)
)

// parseVectorFile reads the header `n p`, validates p == size, then n
// lines `i proc` with i required to run 1..n in strict order. It
// returns, per owning processor, the ordered list of global indices
// (0-based) that processor owns — the local index of entry k within
// perOwner[d] is k, matching Design Note 9's assignment-during-load.
func parseVectorFile(r io.Reader, size int) (n int, perOwner [][]int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func(name string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("%s: %w", name, ErrParse)
		}
		tok := sc.Text()
		v, scanErr := strconv.Atoi(tok)
		if scanErr != nil {
			return 0, fmt.Errorf("%s %q: %w", name, tok, ErrParse)
		}
		return v, nil
	}

	n, err = nextInt("n")
	if err != nil {
		return 0, nil, err
	}
	declaredP, err := nextInt("p")
	if err != nil {
		return 0, nil, err
	}
	if declaredP != size {
		return 0, nil, errVectorProcMismatch
	}

	perOwner = make([][]int, size)
	for want := 1; want <= n; want++ {
		i, err := nextInt("i")
		if err != nil {
			return 0, nil, err
		}
		if i != want {
			return 0, nil, errVectorOutOfOrder
		}
		proc, err := nextInt("proc")
		if err != nil {
			return 0, nil, err
		}
		owner := proc - 1
		if owner < 0 || owner >= size {
			return 0, nil, fmt.Errorf("proc %d: %w", proc, core.ErrOutOfRange)
		}
		perOwner[owner] = append(perOwner[owner], i-1)
	}

	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	return n, perOwner, nil
}
