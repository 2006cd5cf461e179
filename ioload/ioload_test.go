package ioload_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
	"github.com/katalvlaran/spmv/ioload"
	"github.com/stretchr/testify/require"
)

func runLoadMatrix(size int, rank0Text string) ([][]core.Triple, []int, []error) {
	world := comm.NewWorld(size)
	triples := make([][]core.Triple, size)
	ns := make([]int, size)
	errs := make([]error, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for r := 0; r < size; r++ {
		go func(rank int) {
			defer wg.Done()
			p := world.Process(rank)
			var reader *strings.Reader
			if rank == 0 {
				reader = strings.NewReader(rank0Text)
			}
			var t []core.Triple
			var n int
			var err error
			if rank == 0 {
				t, n, err = ioload.LoadMatrix(p, reader)
			} else {
				t, n, err = ioload.LoadMatrix(p, nil)
			}
			triples[rank], ns[rank], errs[rank] = t, n, err
		}(r)
	}
	wg.Wait()
	return triples, ns, errs
}

func TestLoadMatrix_DistributesPerProcessorSlices(t *testing.T) {
	t.Parallel()

	// 3x3 diagonal, p=2: Pstart splits 2 nonzeros to proc0, 1 to proc1.
	text := `3 3 3 2
0 2 3
1 1 1.5
2 2 2.5
3 3 3.5
`
	triples, ns, errs := runLoadMatrix(2, text)
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, 3, ns[0])
	require.Equal(t, 3, ns[1])
	require.Equal(t, []core.Triple{{Row: 0, Col: 0, Val: 1.5}, {Row: 1, Col: 1, Val: 2.5}}, triples[0])
	require.Equal(t, []core.Triple{{Row: 2, Col: 2, Val: 3.5}}, triples[1])
}

func TestLoadMatrix_NonSquareAborts(t *testing.T) {
	t.Parallel()

	text := `2 3 0 2
0 0 0
`
	_, _, errs := runLoadMatrix(2, text)
	require.Error(t, errs[0])
	require.ErrorIs(t, errs[0], core.ErrNonSquare)

	var abortErr *comm.AbortError
	require.True(t, errors.As(errs[1], &abortErr))
	require.Equal(t, int(core.AbortNonSquare), abortErr.Code)
}

func TestLoadMatrix_ProcCountMismatchAborts(t *testing.T) {
	t.Parallel()

	text := `2 2 0 3
0 0 0 0
`
	_, _, errs := runLoadMatrix(2, text)
	require.ErrorIs(t, errs[0], core.ErrProcCountMismatch)

	var abortErr *comm.AbortError
	require.True(t, errors.As(errs[1], &abortErr))
	require.Equal(t, int(core.AbortProcCountMismatch), abortErr.Code)
}

// A truncated file (header present, Pstart/triple lines missing) isn't
// one of the four named abort codes, but rank 0 must still abort: rank
// 1's call is sitting in comm.Broadcast with nothing to unblock it
// otherwise.
func TestLoadMatrix_TruncatedFileAborts(t *testing.T) {
	t.Parallel()

	text := `3 3 3 2
0 2
`
	_, _, errs := runLoadMatrix(2, text)
	require.Error(t, errs[0])
	require.ErrorIs(t, errs[0], ioload.ErrParse)

	var abortErr *comm.AbortError
	require.True(t, errors.As(errs[1], &abortErr))
	require.Equal(t, int(core.AbortIOError), abortErr.Code)
}

func runLoadVector(size int, rank0Text string) ([][]int, []int, []error) {
	world := comm.NewWorld(size)
	locals := make([][]int, size)
	ns := make([]int, size)
	errs := make([]error, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for r := 0; r < size; r++ {
		go func(rank int) {
			defer wg.Done()
			p := world.Process(rank)
			var reader *strings.Reader
			if rank == 0 {
				reader = strings.NewReader(rank0Text)
			}
			var l []int
			var n int
			var err error
			if rank == 0 {
				l, n, err = ioload.LoadVectorDistribution(p, reader)
			} else {
				l, n, err = ioload.LoadVectorDistribution(p, nil)
			}
			locals[rank], ns[rank], errs[rank] = l, n, err
		}(r)
	}
	wg.Wait()
	return locals, ns, errs
}

func TestLoadVectorDistribution_BuildsOwnedSlices(t *testing.T) {
	t.Parallel()

	text := `4 2
1 1
2 2
3 1
4 2
`
	locals, ns, errs := runLoadVector(2, text)
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, 4, ns[0])
	require.Equal(t, []int{0, 2}, locals[0])
	require.Equal(t, []int{1, 3}, locals[1])
}

func TestLoadVectorDistribution_OutOfOrderAborts(t *testing.T) {
	t.Parallel()

	text := `2 1
2 1
1 1
`
	_, _, errs := runLoadVector(1, text)
	require.ErrorIs(t, errs[0], core.ErrOutOfOrder)
}

func TestLoadVectorDistribution_ProcMismatchAborts(t *testing.T) {
	t.Parallel()

	text := `1 2
1 1
`
	_, _, errs := runLoadVector(1, text)
	require.ErrorIs(t, errs[0], core.ErrProcCountMismatch)
}

// A proc column naming a processor outside [1, p] matches neither
// named abort code, but rank 0 must still abort so rank 1's pending
// broadcast unblocks instead of hanging.
func TestLoadVectorDistribution_OutOfRangeProcAborts(t *testing.T) {
	t.Parallel()

	text := `2 2
1 3
2 1
`
	_, _, errs := runLoadVector(2, text)
	require.Error(t, errs[0])
	require.ErrorIs(t, errs[0], core.ErrOutOfRange)

	var abortErr *comm.AbortError
	require.True(t, errors.As(errs[1], &abortErr))
	require.Equal(t, int(core.AbortIOError), abortErr.Code)
}
