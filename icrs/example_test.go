package icrs_test

import (
	"fmt"

	"github.com/katalvlaran/spmv/core"
	"github.com/katalvlaran/spmv/icrs"
)

// Example converts a 2x2 diagonal matrix diag(1, 2) to ICRS form and
// walks it back out.
func Example() {
	triples := []core.Triple{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 2},
	}

	m, err := icrs.Convert(2, triples)
	if err != nil {
		panic(err)
	}
	fmt.Println("nrows:", m.NRows, "ncols:", m.NCols)

	for _, t := range icrs.Walk(m) {
		fmt.Printf("a[%d][%d]=%g\n", t.Row, t.Col, t.Val)
	}
	// Output:
	// nrows: 2 ncols: 2
	// a[0][0]=1
	// a[1][1]=2
}
