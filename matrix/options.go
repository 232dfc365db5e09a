// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
package matrix

// DefaultValidateNaNInf is the default numeric policy for Dense.Set: reject
// NaN/±Inf writes rather than silently storing them. The placement solver
// relies on this to fail fast on a diverging Hessian rather than propagate
// NaNs through Cholesky.
const DefaultValidateNaNInf = true
