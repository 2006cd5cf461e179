package icrs

// ICRS is one processor's local nonzero block after conversion: values
// in row-major (ICRS) order, the increment vector that walks them, and
// the local-to-global maps for rows and columns. It is built once by
// Convert and is read-only for the rest of the pipeline (plan builder,
// kernel).
type ICRS struct {
	NRows, NCols int

	// RowIndex[i] / ColIndex[j] is the global row/column index that
	// local slot i/j corresponds to. Both are strictly increasing.
	RowIndex []int
	ColIndex []int

	// A holds the nz nonzero values in row-major order, followed by one
	// sentinel zero at A[nz].
	A []float64

	// Inc is the increment vector: Inc[0] is the local column of the
	// first nonzero; Inc[k] for k>0 is the column delta from nonzero
	// k-1 to k (plus NCols if that delta crosses a row boundary); and
	// Inc[nz] is the end-of-stream sentinel. len(Inc) == len(A).
	Inc []int
}

// NZ returns the number of stored nonzeros (excluding the sentinel
// slot present in A and Inc).
func (m *ICRS) NZ() int {
	if len(m.A) == 0 {
		return 0
	}
	return len(m.A) - 1
}
