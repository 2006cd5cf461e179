package refmat

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by At/Set when a row or column index falls
// outside [0, n).
var ErrOutOfRange = errors.New("refmat: index out of range")

// denseErrorf wraps ErrOutOfRange with method and coordinate context.
func denseErrorf(method string, row, col int) error {
	return fmt.Errorf("refmat.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}
