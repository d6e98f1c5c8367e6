// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms return these
// sentinels (wrapped with context via fmt.Errorf("%w", ...)) rather than
// panicking on user-triggered error conditions; tests check them via
// errors.Is. Panics are reserved for indexing bugs in private helpers.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested Dense dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an At/Set index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense was used where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRankDeficient is returned by SolveLeastSquares when a Householder
	// reflection collapses a column to (numerically) zero, leaving R with
	// a zero diagonal entry that back substitution cannot divide by.
	// Callers must surface this as a numerical failure rather than return
	// an ill-conditioned vector silently.
	ErrRankDeficient = errors.New("matrix: rank-deficient system, cannot solve")
)
