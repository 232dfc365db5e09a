// Package solver implements the analytical quadratic-wirelength placement
// solve: for each axis independently, minimize x^T A x - 2 b^T x subject to
// A being built from mobile-mobile and fixed-mobile pin contributions, then
// solve A x = b by Cholesky factorization shared across the three axes.
package solver
