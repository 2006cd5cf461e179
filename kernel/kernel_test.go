package kernel_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/spmv/comm"
	"github.com/katalvlaran/spmv/core"
	"github.com/katalvlaran/spmv/distplan"
	"github.com/katalvlaran/spmv/icrs"
	"github.com/katalvlaran/spmv/kernel"
	"github.com/katalvlaran/spmv/refmat"
	"github.com/stretchr/testify/require"
)

// ownersByModulus assigns global index g to processor g%size, in
// ascending order, and returns each processor's owned global indices.
func ownersByModulus(n, size int) [][]int {
	owned := make([][]int, size)
	for g := 0; g < n; g++ {
		owned[g%size] = append(owned[g%size], g)
	}
	return owned
}

// TestMatVec_MatchesSequentialReference runs one distributed matvec
// across goroutine-simulated processors against a deliberately
// scattered 6x6 sparse matrix (rows distributed cyclically mod 3, so every
// processor's column needs are a mix of local and remote owners) and
// checks the gathered result against refmat's sequential product
// (spec.md §8 property 5).
func TestMatVec_MatchesSequentialReference(t *testing.T) {
	t.Parallel()

	const n = 6
	const size = 3

	triples := []core.Triple{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 3, Val: 2},
		{Row: 1, Col: 1, Val: 3}, {Row: 1, Col: 4, Val: 1},
		{Row: 2, Col: 2, Val: 5}, {Row: 2, Col: 0, Val: 2},
		{Row: 3, Col: 3, Val: 4}, {Row: 3, Col: 5, Val: 1},
		{Row: 4, Col: 4, Val: 2}, {Row: 4, Col: 1, Val: 3},
		{Row: 5, Col: 5, Val: 6}, {Row: 5, Col: 2, Val: 1},
	}
	vFull := []float64{10, 20, 30, 40, 50, 60}

	ref, err := refmat.FromTriples(n, triples)
	require.NoError(t, err)
	uWant := ref.MulVec(vFull)

	owned := ownersByModulus(n, size) // same scheme for both rows and v/u-distribution

	localTriples := make([][]core.Triple, size)
	for _, tr := range triples {
		r := tr.Row % size
		localTriples[r] = append(localTriples[r], tr)
	}

	blocks := make([]*icrs.ICRS, size)
	vOwned := make([][]float64, size)
	for r := 0; r < size; r++ {
		m, err := icrs.Convert(n, localTriples[r])
		require.NoError(t, err)
		blocks[r] = m

		vOwned[r] = make([]float64, len(owned[r]))
		for i, g := range owned[r] {
			vOwned[r][i] = vFull[g]
		}
	}

	world := comm.NewWorld(size)
	uOwned := make([][]float64, size)
	errs := make([]error, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for r := 0; r < size; r++ {
		go func(rank int) {
			defer wg.Done()
			p := world.Process(rank)
			m := blocks[rank]

			vplan, err := distplan.BuildVPlan(p, m.ColIndex, owned[rank])
			if err != nil {
				errs[rank] = err
				return
			}
			uplan, err := distplan.BuildUPlan(p, m.RowIndex, owned[rank])
			if err != nil {
				errs[rank] = err
				return
			}

			k := kernel.New(m, vplan, uplan)
			u := make([]float64, len(owned[rank]))
			if err := k.MatVec(p, vOwned[rank], u); err != nil {
				errs[rank] = err
				return
			}
			uOwned[rank] = u
		}(r)
	}
	wg.Wait()

	uGot := make([]float64, n)
	for r := 0; r < size; r++ {
		require.NoError(t, errs[r])
		for i, g := range owned[r] {
			uGot[g] = uOwned[r][i]
		}
	}
	require.Equal(t, uWant, uGot)
}

// TestMatVec_RepeatedInvocationsAreIdempotent checks that calling
// MatVec many times with the same plan (as the 1000-iteration driver
// loop does) reproduces the same result every time, with no state
// leaking between invocations.
func TestMatVec_RepeatedInvocationsAreIdempotent(t *testing.T) {
	t.Parallel()

	const n = 2
	const size = 2
	triples := []core.Triple{
		{Row: 0, Col: 0, Val: 2}, {Row: 1, Col: 1, Val: 3},
	}
	owned := [][]int{{0}, {1}}
	localTriples := [][]core.Triple{{triples[0]}, {triples[1]}}

	world := comm.NewWorld(size)
	const iters = 5
	uHistory := make([][]float64, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for r := 0; r < size; r++ {
		go func(rank int) {
			defer wg.Done()
			p := world.Process(rank)
			m, err := icrs.Convert(n, localTriples[rank])
			require.NoError(t, err)
			vplan, err := distplan.BuildVPlan(p, m.ColIndex, owned[rank])
			require.NoError(t, err)
			uplan, err := distplan.BuildUPlan(p, m.RowIndex, owned[rank])
			require.NoError(t, err)
			k := kernel.New(m, vplan, uplan)

			v := []float64{float64(rank + 1) * 5}
			u := make([]float64, 1)
			var last []float64
			for i := 0; i < iters; i++ {
				require.NoError(t, k.MatVec(p, v, u))
				if last != nil {
					require.Equal(t, last, u)
				}
				last = append([]float64(nil), u...)
			}
			uHistory[rank] = last
		}(r)
	}
	wg.Wait()

	require.Equal(t, []float64{10}, uHistory[0]) // 2 * 5
	require.Equal(t, []float64{30}, uHistory[1]) // 3 * 10
}
