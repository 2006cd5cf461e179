package icrs

import (
	"fmt"

	"github.com/katalvlaran/spmv/core"
	"github.com/katalvlaran/spmv/rsort"
)

// Convert turns nz unordered local triples with global row/column
// indices (against an n×n matrix) into ICRS form, per spec.md §4.2:
//
//  1. radix = Radix(n).
//  2. two counting-sort passes (MOD then DIV) on the column field,
//     permuting (row, col, value) together — ascending global column.
//  3. walk the sorted sequence, assigning local column indices and
//     recording each new global column in ColIndex.
//  4. two more counting-sort passes on the row field — stability
//     preserves the column order already established within each row.
//  5. walk again, assigning local row indices, recording RowIndex, and
//     computing the increment vector.
//  6. append the end-of-stream sentinel.
//
// Convert does not mutate its input slice; it returns a fresh ICRS.
//
// Complexity: Theta(nz + sqrt(n)) time and auxiliary memory.
func Convert(n int, triples []core.Triple) (*ICRS, error) {
	if err := core.ValidatePositive("n", n); err != nil {
		return nil, fmt.Errorf("icrs.Convert: %w", err)
	}

	nz := len(triples)
	if nz == 0 {
		return &ICRS{
			NRows: 0, NCols: 0,
			RowIndex: nil, ColIndex: nil,
			A:   []float64{0},
			Inc: []int{0},
		}, nil
	}

	if err := checkNoDuplicates(triples); err != nil {
		return nil, err
	}

	radix := rsort.Radix(n)

	// Step 2: sort by global column.
	byCol := make([]rsort.Item[core.Triple], nz)
	for k, t := range triples {
		byCol[k] = rsort.Item[core.Triple]{FieldVal: t.Col, Payload: t}
	}
	byCol = rsort.CountingSort(byCol, radix, core.MOD)
	byCol = rsort.CountingSort(byCol, radix, core.DIV)

	// Step 3: assign local column indices, rewriting Col in place, and
	// record the local->global column map.
	colIndex := make([]int, 0, nz)
	work := make([]core.Triple, nz)
	lastGlobalCol := -1
	localCol := -1
	for k, it := range byCol {
		t := it.Payload
		if t.Col != lastGlobalCol {
			localCol++
			colIndex = append(colIndex, t.Col)
			lastGlobalCol = t.Col
		}
		t.Col = localCol
		work[k] = t
	}
	ncols := localCol + 1

	// Step 4: sort by global row (stable on top of the column order).
	byRow := make([]rsort.Item[core.Triple], nz)
	for k, t := range work {
		byRow[k] = rsort.Item[core.Triple]{FieldVal: t.Row, Payload: t}
	}
	byRow = rsort.CountingSort(byRow, radix, core.MOD)
	byRow = rsort.CountingSort(byRow, radix, core.DIV)

	// Step 5: assign local row indices, record RowIndex, compute Inc.
	rowIndex := make([]int, 0, nz)
	a := make([]float64, nz+1)
	inc := make([]int, nz+1)
	lastGlobalRow := -1
	localRow := -1
	prevLocalCol := 0
	for k, it := range byRow {
		t := it.Payload
		newRow := t.Row != lastGlobalRow
		if newRow {
			localRow++
			rowIndex = append(rowIndex, t.Row)
			lastGlobalRow = t.Row
		}
		a[k] = t.Val

		switch {
		case k == 0:
			inc[0] = t.Col
		case newRow:
			inc[k] = t.Col - prevLocalCol + ncols
		default:
			inc[k] = t.Col - prevLocalCol
		}
		prevLocalCol = t.Col
	}
	nrows := localRow + 1

	// Step 6: sentinels.
	inc[nz] = ncols - prevLocalCol
	a[nz] = 0

	return &ICRS{
		NRows: nrows, NCols: ncols,
		RowIndex: rowIndex, ColIndex: colIndex,
		A: a, Inc: inc,
	}, nil
}

func checkNoDuplicates(triples []core.Triple) error {
	seen := make(map[[2]int]struct{}, len(triples))
	for _, t := range triples {
		key := [2]int{t.Row, t.Col}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("icrs.Convert: row=%d col=%d: %w", t.Row, t.Col, ErrDuplicateNonzero)
		}
		seen[key] = struct{}{}
	}
	return nil
}
