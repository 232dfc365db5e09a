package ops_test

import (
	"testing"

	"github.com/mcpnr/mcpnr/matrix"
	"github.com/mcpnr/mcpnr/matrix/ops"
	"github.com/stretchr/testify/require"
)

func TestCholesky_KnownSPD(t *testing.T) {
	t.Parallel()

	// A = [[4,2],[2,3]] is SPD; L should satisfy L*L^T == A.
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 4)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 2)
	_ = a.Set(1, 1, 3)

	factor, err := ops.Cholesky(a)
	require.NoError(t, err)

	l00, _ := factor.L.At(0, 0)
	l10, _ := factor.L.At(1, 0)
	l11, _ := factor.L.At(1, 1)
	require.InDelta(t, 2.0, l00, 1e-9)
	require.InDelta(t, 1.0, l10, 1e-9)
	require.InDelta(t, 1.4142135, l11, 1e-6)
}

func TestCholesky_NonSquare(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewDense(2, 3)
	_, err := ops.Cholesky(m)
	require.ErrorIs(t, err, matrix.ErrMatrixDimensionMismatch)
}

func TestCholesky_NonPositiveDefinite(t *testing.T) {
	t.Parallel()

	// Zero matrix has a zero pivot, which is non-positive.
	m, _ := matrix.NewDense(2, 2)
	_, err := ops.Cholesky(m)
	require.ErrorIs(t, err, ops.ErrNotPositiveDefinite)
}

func TestCholeskyFactor_Solve(t *testing.T) {
	t.Parallel()

	// A*x = b with A = [[4,2],[2,3]], b = [1,1] -> x = [0.125, 0.25]
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 4)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 2)
	_ = a.Set(1, 1, 3)

	factor, err := ops.Cholesky(a)
	require.NoError(t, err)

	x, err := factor.Solve([]float64{1, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.125, x[0], 1e-6)
	require.InDelta(t, 0.25, x[1], 1e-6)
}

func TestCholeskyFactor_Solve_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 1)
	factor, err := ops.Cholesky(a)
	require.NoError(t, err)

	_, err = factor.Solve([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrMatrixDimensionMismatch)
}
