package core_test

import (
	"testing"

	"github.com/katalvlaran/spmv/core"
	"github.com/stretchr/testify/require"
)

func TestValidatePositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.ValidatePositive("n", 1))
	require.ErrorIs(t, core.ValidatePositive("n", 0), core.ErrBadShape)
	require.ErrorIs(t, core.ValidatePositive("n", -3), core.ErrBadShape)
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.ValidateSquare(core.Dims{Rows: 4, Cols: 4}))
	require.ErrorIs(t, core.ValidateSquare(core.Dims{Rows: 4, Cols: 5}), core.ErrNonSquare)
}

func TestValidateProcCount(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.ValidateProcCount(3, 3))
	require.ErrorIs(t, core.ValidateProcCount(3, 4), core.ErrProcCountMismatch)
}

func TestValidateRank(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.ValidateRank(0, 3))
	require.NoError(t, core.ValidateRank(2, 3))
	require.ErrorIs(t, core.ValidateRank(-1, 3), core.ErrOutOfRange)
	require.ErrorIs(t, core.ValidateRank(3, 3), core.ErrOutOfRange)
}

func TestValidateLocalIndex(t *testing.T) {
	t.Parallel()

	require.NoError(t, core.ValidateLocalIndex(0, 1))
	require.ErrorIs(t, core.ValidateLocalIndex(-1, 1), core.ErrOutOfRange)
	require.ErrorIs(t, core.ValidateLocalIndex(1, 1), core.ErrOutOfRange)
}
