package icrs

import "github.com/katalvlaran/spmv/core"

// Walk reconstructs the original (global row, global column, value)
// triples by traversing the ICRS stream with the two-cursor state
// machine described in spec.md §4.4 step 2 and Design Note 2: a
// column cursor j initialized to Inc[0], a row cursor i initialized to
// 0, advancing j by Inc[k+1] after each nonzero and bumping i whenever
// j wraps past NCols. It is the inverse of Convert and is used by
// tests to check the round-trip invariant (spec.md §8 property 1); the
// kernel does not call Walk but repeats the same cursor loop inline.
//
// Complexity: O(nz).
func Walk(m *ICRS) []core.Triple {
	nz := m.NZ()
	if nz == 0 {
		return nil
	}

	out := make([]core.Triple, 0, nz)
	i, j := 0, m.Inc[0]
	for k := 0; k < nz; k++ {
		out = append(out, core.Triple{
			Row: m.RowIndex[i],
			Col: m.ColIndex[j],
			Val: m.A[k],
		})
		j += m.Inc[k+1]
		if j >= m.NCols {
			j -= m.NCols
			i++
		}
	}
	return out
}
