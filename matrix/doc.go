// Package matrix provides the dense matrix storage the placement solver
// assembles its per-axis Hessian into.
//
// The matrix package provides:
//
//   - Matrix, a minimal row/col/At/Set/Clone interface.
//   - Dense, a row-major float64 implementation with bounds-checked
//     indexing and an optional NaN/Inf write policy.
//   - Validation helpers (ValidateSameShape, ValidateSquare) shared by
//     matrix/ops and callers that assemble a Dense before factoring it.
//
// matrix/ops builds on top of Dense with the Cholesky factorization the
// solver package uses to solve the quadratic wirelength system.
package matrix
