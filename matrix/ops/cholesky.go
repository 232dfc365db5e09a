// Package ops provides advanced matrix operations for the matrix package.
// Cholesky decomposes a symmetric positive-definite matrix A = L * L^T and solves
// linear systems against the resulting factor without forming an explicit inverse.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/mcpnr/mcpnr/matrix"
)

// ErrNotPositiveDefinite is returned when a non-positive diagonal pivot is
// encountered during factorization, meaning A is not symmetric positive-definite.
var ErrNotPositiveDefinite = errors.New("ops: matrix is not symmetric positive-definite")

// CholeskyFactor holds the lower-triangular factor L of A = L * L^T, along with
// its dimension. Zero value is not usable; construct via Cholesky.
type CholeskyFactor struct {
	L matrix.Matrix
	n int
}

// Cholesky factors the square, symmetric matrix m as L * L^T via the standard
// column-oriented algorithm. Returns ErrMatrixDimensionMismatch if m is not
// square, or ErrNotPositiveDefinite if a diagonal pivot is non-positive within
// the hessian placement solves this guards against near-singular nets (e.g. a
// net whose cells are all locked, contributing no mobile-mobile terms).
// Complexity: O(n³) time, O(n²) memory.
func Cholesky(m matrix.Matrix) (*CholeskyFactor, error) {
	// Stage 1: Validate input is square
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}
	n := m.Rows()

	// Stage 2: Prepare L
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}

	// Stage 3: Execute column-oriented factorization
	var (
		i, j, k    int
		sum        float64
		aVal       float64
		lik, ljk   float64
		diag       float64
	)
	for j = 0; j < n; j++ {
		// Diagonal entry: L[j][j] = sqrt(A[j][j] - sum_{k<j} L[j][k]^2)
		sum = 0
		for k = 0; k < j; k++ {
			ljk, _ = L.At(j, k)
			sum += ljk * ljk
		}
		aVal, _ = m.At(j, j)
		diag = aVal - sum
		if diag <= 0 {
			return nil, fmt.Errorf("Cholesky: non-positive pivot at %d: %w", j, ErrNotPositiveDefinite)
		}
		diag = math.Sqrt(diag)
		_ = L.Set(j, j, diag)

		// Below-diagonal entries in column j
		for i = j + 1; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				lik, _ = L.At(i, k)
				ljk, _ = L.At(j, k)
				sum += lik * ljk
			}
			aVal, _ = m.At(i, j)
			_ = L.Set(i, j, (aVal-sum)/diag)
		}
	}

	// Stage 4: Finalize
	return &CholeskyFactor{L: L, n: n}, nil
}

// Solve solves A*x = b for x, given the Cholesky factor of A, via forward
// substitution (L*y = b) followed by back substitution (L^T*x = y).
// len(b) must equal the factored dimension; returns ErrMatrixDimensionMismatch
// otherwise. Complexity: O(n²) time, O(n) extra memory.
func (f *CholeskyFactor) Solve(b []float64) ([]float64, error) {
	// Stage 1: Validate shape
	if len(b) != f.n {
		return nil, fmt.Errorf("CholeskyFactor.Solve: rhs length %d != %d: %w", len(b), f.n, matrix.ErrMatrixDimensionMismatch)
	}

	// Stage 2: Forward substitution L*y = b
	y := make([]float64, f.n)
	var i, k int
	var sum, lik, diag float64
	for i = 0; i < f.n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			lik, _ = f.L.At(i, k)
			sum += lik * y[k]
		}
		diag, _ = f.L.At(i, i)
		y[i] = (b[i] - sum) / diag
	}

	// Stage 3: Back substitution L^T*x = y
	x := make([]float64, f.n)
	for i = f.n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < f.n; k++ {
			lik, _ = f.L.At(k, i) // L^T[i][k] == L[k][i]
			sum += lik * x[k]
		}
		diag, _ = f.L.At(i, i)
		x[i] = (y[i] - sum) / diag
	}

	// Stage 4: Finalize
	return x, nil
}
