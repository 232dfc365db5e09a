package solver

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mcpnr/mcpnr/matrix"
	"github.com/mcpnr/mcpnr/matrix/ops"
	"github.com/mcpnr/mcpnr/netlist"
)

// AnalyticWirelengthProblem is the per-axis-shared quadratic wirelength
// problem: min x^T A x - 2 b^T x, solved by A x = b. A is assembled once
// and shared across the three axes; only the right-hand side differs.
type AnalyticWirelengthProblem struct {
	hessian *matrix.Dense
	bx, by, bz []float64
}

// NewProblem allocates a problem of the given size (mobile cell count plus
// any extra pseudo-nodes a decomposition strategy requires).
func NewProblem(size int) (*AnalyticWirelengthProblem, error) {
	hessian, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, errors.Wrap(err, "solver: allocate hessian")
	}
	return &AnalyticWirelengthProblem{
		hessian: hessian,
		bx:      make([]float64, size),
		by:      make([]float64, size),
		bz:      make([]float64, size),
	}, nil
}

// CellMobileMobile adds a quadratic spring of weight w between two mobile
// entities i and j: +w to A[i,i] and A[j,j], -w to A[i,j] and A[j,i].
func (p *AnalyticWirelengthProblem) CellMobileMobile(i, j int, weight float64) {
	addAt(p.hessian, i, i, weight)
	addAt(p.hessian, j, j, weight)
	addAt(p.hessian, i, j, -weight)
	addAt(p.hessian, j, i, -weight)
}

// CellFixedMobile ties mobile entity mobileIndex to the constant position
// fixedPos with weight w: +w to A[i,i], +w*p to b[i] per axis.
func (p *AnalyticWirelengthProblem) CellFixedMobile(mobileIndex int, weight float64, fixedPos netlist.Vector3) {
	addAt(p.hessian, mobileIndex, mobileIndex, weight)
	p.bx[mobileIndex] += weight * fixedPos.X
	p.by[mobileIndex] += weight * fixedPos.Y
	p.bz[mobileIndex] += weight * fixedPos.Z
}

func addAt(m *matrix.Dense, i, j int, delta float64) {
	cur, _ := m.At(i, j)
	_ = m.Set(i, j, cur+delta)
}

// Solve factors the Hessian once via Cholesky and solves three right-hand
// sides (x, y, z). Returns ErrSolverNonHermitian if the Hessian is not
// positive definite.
func (p *AnalyticWirelengthProblem) Solve() (x, y, z []float64, err error) {
	logrus.WithField("size", p.hessian.Rows()).Debug("solver: problem_solve")

	factor, err := ops.Cholesky(p.hessian)
	if err != nil {
		return nil, nil, nil, errors.Wrap(ErrSolverNonHermitian, err.Error())
	}

	x, err = factor.Solve(p.bx)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "solver: solve_x")
	}
	y, err = factor.Solve(p.by)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "solver: solve_y")
	}
	z, err = factor.Solve(p.bz)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "solver: solve_z")
	}

	return x, y, z, nil
}
