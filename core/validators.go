package core

import "fmt"

// validatorErrorf wraps an underlying error with the given validator's
// name, tagging every returned error with the function that detected
// the failure.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidatePositive ensures n > 0. Used for the matrix order n by
// icrs.Convert and refmat.NewDense.
// Complexity: O(1).
func ValidatePositive(name string, n int) error {
	if n <= 0 {
		return validatorErrorf("ValidatePositive("+name+")", ErrBadShape)
	}
	return nil
}

// ValidateSquare ensures rows == cols, returning ErrNonSquare
// otherwise. The matrix loader makes its own m == n check and maps
// that failure to AbortNonSquare; it does not call ValidateSquare.
// Complexity: O(1).
func ValidateSquare(d Dims) error {
	if d.Rows != d.Cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateProcCount ensures a file-declared processor count matches
// the runtime's actual size.
// Complexity: O(1).
func ValidateProcCount(declared, actual int) error {
	if declared != actual {
		return validatorErrorf(
			"ValidateProcCount",
			fmt.Errorf("declared p=%d, runtime size=%d: %w", declared, actual, ErrProcCountMismatch),
		)
	}
	return nil
}

// ValidateRank ensures 0 <= r < size.
// Complexity: O(1).
func ValidateRank(r Rank, size int) error {
	if int(r) < 0 || int(r) >= size {
		return validatorErrorf("ValidateRank", ErrOutOfRange)
	}
	return nil
}

// ValidateLocalIndex ensures 0 <= idx < n, the bound-check Design Note
// 1 of spec.md asks implementers to perform even though the original
// does not: a directory response naming a local index outside [0, n)
// must be rejected rather than silently indexed.
// Complexity: O(1).
func ValidateLocalIndex(idx, n int) error {
	if idx < 0 || idx >= n {
		return validatorErrorf("ValidateLocalIndex", ErrOutOfRange)
	}
	return nil
}
