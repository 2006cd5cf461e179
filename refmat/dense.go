package refmat

import "github.com/katalvlaran/spmv/core"

// Dense is an n×n row-major reference matrix.
type Dense struct {
	n    int
	data []float64
}

// NewDense returns an n×n matrix of zeros.
func NewDense(n int) (*Dense, error) {
	if err := core.ValidatePositive("n", n); err != nil {
		return nil, err
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FromTriples builds an n×n Dense from global (row, col, value)
// triples, the same input icrs.Convert consumes.
func FromTriples(n int, triples []core.Triple) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for _, t := range triples {
		if err := m.Set(t.Row, t.Col, t.Val); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// N returns the matrix order.
func (m *Dense) N() int { return m.n }

// At returns the value at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col)
	}
	return m.data[row*m.n+col], nil
}

// Set writes v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return denseErrorf("Set", row, col)
	}
	m.data[row*m.n+col] = v
	return nil
}

// MulVec computes u = m*v sequentially. len(v) and the returned u both
// equal m.N().
func (m *Dense) MulVec(v []float64) []float64 {
	u := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var sum float64
		row := m.data[i*m.n : i*m.n+m.n]
		for j, a := range row {
			sum += a * v[j]
		}
		u[i] = sum
	}
	return u
}
