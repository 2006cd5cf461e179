package kernel

import "errors"

// ErrVectorLengthMismatch is returned when MatVec is called with v or u
// slices that don't match the lengths their plans were built for.
var ErrVectorLengthMismatch = errors.New("kernel: vector length mismatch")
