package solver_test

import (
	"testing"

	"github.com/mcpnr/mcpnr/netlist"
	"github.com/mcpnr/mcpnr/solver"
	"github.com/stretchr/testify/require"
)

func TestSolve_SingleMobileCellBetweenTwoAnchors(t *testing.T) {
	t.Parallel()

	// One mobile cell m0 anchored to f0=(0,0,0) and f1=(2,2,2) with equal
	// weight; the minimum of the quadratic sits at the midpoint (1,1,1).
	p, err := solver.NewProblem(1)
	require.NoError(t, err)

	p.CellFixedMobile(0, 1.0, netlist.Vector3{X: 0, Y: 0, Z: 0})
	p.CellFixedMobile(0, 1.0, netlist.Vector3{X: 2, Y: 2, Z: 2})

	x, y, z, err := p.Solve()
	require.NoError(t, err)
	require.InDelta(t, 1.0, x[0], 1e-6)
	require.InDelta(t, 1.0, y[0], 1e-6)
	require.InDelta(t, 1.0, z[0], 1e-6)
}

func TestSolve_NonHermitianWithNoAnchor(t *testing.T) {
	t.Parallel()

	// A single mobile cell with zero contributions leaves a zero Hessian,
	// which is not positive definite.
	p, err := solver.NewProblem(1)
	require.NoError(t, err)

	_, _, _, err = p.Solve()
	require.ErrorIs(t, err, solver.ErrSolverNonHermitian)
}
