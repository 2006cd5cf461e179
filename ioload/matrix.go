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

// LoadMatrix reads the matrix-triple file (spec.md §6) and distributes
// each processor's slice of nonzeros to it. r is only read on rank 0;
// every other rank may pass nil. Returns this rank's local triples and
// the matrix order n, which every rank sees identically.
//
// On a declared shape that disagrees with the runtime (m != n, or the
// file's p disagreeing with p.Size()), rank 0 aborts the world with
// the matching code; any other parse failure (truncated file,
// non-numeric token) aborts with AbortIOError. Either way every rank's
// call returns the wrapped error instead of the other ranks blocking
// forever on the following collective.
func LoadMatrix(p *comm.Process, r io.Reader) ([]core.Triple, int, error) {
	size := p.Size()

	var n int
	var counts []int
	var flat []core.Triple

	if p.Rank() == 0 {
		hdrN, triples, pstart, err := parseMatrixFile(r)
		if err != nil {
			code := core.AbortIOError
			if errors.Is(err, core.ErrNonSquare) {
				code = core.AbortNonSquare
			}
			p.Abort(int(code), err.Error())
			return nil, 0, fmt.Errorf("ioload.LoadMatrix: %w", err)
		}
		declaredP := len(pstart) - 1
		if declaredP != size {
			p.Abort(int(core.AbortProcCountMismatch), "matrix file processor count mismatch")
			return nil, 0, fmt.Errorf("ioload.LoadMatrix: file p=%d, world size=%d: %w", declaredP, size, core.ErrProcCountMismatch)
		}

		n = hdrN
		counts = make([]int, size)
		for d := 0; d < size; d++ {
			counts[d] = pstart[d+1] - pstart[d]
		}
		flat = triples
	}

	n, err := comm.Broadcast(p, 0, n)
	if err != nil {
		return nil, 0, fmt.Errorf("ioload.LoadMatrix: %w", err)
	}

	if p.Rank() != 0 {
		counts = make([]int, size)
	}
	_, localTriples, err := comm.AllToAllVariable(p, counts, flat)
	if err != nil {
		return nil, 0, fmt.Errorf("ioload.LoadMatrix: %w", err)
	}
	return localTriples, n, nil
}

// parseMatrixFile reads the header `m n nz p`, validates m == n,
// reads the p+1 Pstart boundaries, then the nz `i j v` lines
// (1-based, converted to 0-based).
func parseMatrixFile(r io.Reader) (n int, triples []core.Triple, pstart []int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(name string) (string, error) {
		if !sc.Scan() {
			return "", fmt.Errorf("%s: %w", name, ErrParse)
		}
		return sc.Text(), nil
	}
	nextInt := func(name string) (int, error) {
		tok, err := next(name)
		if err != nil {
			return 0, err
		}
		v, scanErr := strconv.Atoi(tok)
		if scanErr != nil {
			return 0, fmt.Errorf("%s %q: %w", name, tok, ErrParse)
		}
		return v, nil
	}

	m, err := nextInt("m")
	if err != nil {
		return 0, nil, nil, err
	}
	n, err = nextInt("n")
	if err != nil {
		return 0, nil, nil, err
	}
	nz, err := nextInt("nz")
	if err != nil {
		return 0, nil, nil, err
	}
	declaredP, err := nextInt("p")
	if err != nil {
		return 0, nil, nil, err
	}
	if m != n {
		return 0, nil, nil, fmt.Errorf("m=%d n=%d: %w", m, n, core.ErrNonSquare)
	}

	pstart = make([]int, declaredP+1)
	for i := range pstart {
		v, err := nextInt("Pstart")
		if err != nil {
			return 0, nil, nil, err
		}
		pstart[i] = v
	}

	triples = make([]core.Triple, nz)
	for k := 0; k < nz; k++ {
		i, err := nextInt("i")
		if err != nil {
			return 0, nil, nil, err
		}
		j, err := nextInt("j")
		if err != nil {
			return 0, nil, nil, err
		}
		tok, err := next("v")
		if err != nil {
			return 0, nil, nil, err
		}
		v, scanErr := strconv.ParseFloat(tok, 64)
		if scanErr != nil {
			return 0, nil, nil, fmt.Errorf("v %q: %w", tok, ErrParse)
		}
		triples[k] = core.Triple{Row: i - 1, Col: j - 1, Val: v}
	}

	if err := sc.Err(); err != nil {
		return 0, nil, nil, err
	}
	return n, triples, pstart, nil
}
