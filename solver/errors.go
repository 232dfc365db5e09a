package solver

import "errors"

// ErrSolverNonHermitian indicates the Hessian failed Cholesky factorization
// (not positive definite), meaning a pathological or disconnected netlist:
// some mobile block of the matrix has no anchor tying it to a fixed
// position, leaving its diagonal block singular.
var ErrSolverNonHermitian = errors.New("solver: hessian is non-hermitian")
