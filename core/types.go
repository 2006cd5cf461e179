package core

// Triple is one nonzero a_ij of the distributed matrix, addressed by
// global (0-based) row and column indices. Triples are transient: they
// exist only between the point a loader reads them from disk and the
// point the converter folds them into ICRS form.
type Triple struct {
	Row, Col int
	Val      float64
}

// KeyType selects which arithmetic operation a radix pass extracts a
// sort key with. DIV and MOD are the only two keytypes the converter
// needs: a full ascending sort by global index is two radix passes,
// MOD then DIV, against the same radix.
type KeyType int

const (
	// MOD yields index mod radix — the low-order digit.
	MOD KeyType = iota
	// DIV yields index / radix — the high-order digit.
	DIV
)

// Rank identifies one SPMD process, s in [0, Size).
type Rank int

// Owner describes where a global vector component lives: the owning
// processor and the local slot index on that processor. It is what the
// plan builder's directory stores per global index and what its
// resolve phase returns per plan slot.
type Owner struct {
	Proc  Rank
	Local int
}

// Dims is the (rows, cols) shape of a square n×n matrix. Square-ness is
// enforced by ValidateSquare, not by the type itself, so that Dims can
// also describe the local (nrows, ncols) shape of a per-processor ICRS
// block, which need not be square.
type Dims struct {
	Rows, Cols int
}
