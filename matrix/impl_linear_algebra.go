// SPDX-License-Identifier: MIT
// Package matrix: rectangular least-squares solver.
//
// Purpose:
//   - Solve the overdetermined system A·x ≈ b (m ≥ n) in the least-squares
//     sense via column-oriented Householder QR, generalized from a
//     square-only Householder QR to rectangular A.
//
// Contract:
//   - A is m×n with m ≥ n; len(b) == m. Returns ErrDimensionMismatch
//     otherwise.
//   - Reflections are applied directly to an augmented [A | b] working
//     copy rather than forming Q explicitly — Qᵀb is accumulated in place
//     of Qᵀ, since the caller only ever wants x, not Q itself.

package matrix

import "math"

// zeroPivotTol is the tolerance below which a Householder column norm (and
// hence the corresponding R diagonal entry) is treated as a rank-deficient
// zero pivot.
const zeroPivotTol = 1e-10

// SolveLeastSquares solves A·x ≈ b for x in the least-squares sense using
// Householder QR. A must have at least as many rows as columns.
//
// Determinism: Householder steps are applied in fixed column order
// k = 0..n-1, matching the teacher's square-only QR kernel this was
// generalized from.
//
// Complexity: Time O(m*n^2), Space O(m*n).
func SolveLeastSquares(A *Dense, b []float64) ([]float64, error) {
	if err := ValidateOverdetermined(A); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(b, A.Rows()); err != nil {
		return nil, err
	}

	m, n := A.Rows(), A.Cols()

	// Work on an augmented [A | b] copy: n+1 columns, the last holding b.
	// Reflections applied to A are applied to this extra column too, which
	// accumulates Qᵀb without ever forming Q explicitly.
	aug, err := NewDense(m, n+1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, _ := A.At(i, j) // in-bounds by construction
			aug.data[i*(n+1)+j] = v
		}
		aug.data[i*(n+1)+n] = b[i]
	}
	width := n + 1

	v := make([]float64, m)
	for k := 0; k < n; k++ {
		// 1) norm of the working column below the diagonal.
		norm := 0.0
		for i := k; i < m; i++ {
			x := aug.data[i*width+k]
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm < zeroPivotTol {
			return nil, ErrRankDeficient
		}

		// 2) alpha = -sign(A[k,k]) * norm; build Householder vector v.
		akk := aug.data[k*width+k]
		alpha := -math.Copysign(norm, akk)

		for i := range v {
			v[i] = 0
		}
		for i := k; i < m; i++ {
			v[i] = aug.data[i*width+k]
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta < zeroPivotTol*zeroPivotTol {
			return nil, ErrRankDeficient
		}
		tau := 2.0 / beta

		// 3) apply the reflection to every remaining column, including
		// the augmented b column.
		for j := k; j < width; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * aug.data[i*width+j]
			}
			for i := k; i < m; i++ {
				aug.data[i*width+j] -= tau * v[i] * sum
			}
		}
	}

	// Back substitution on the n×n upper-triangular R (rows 0..n-1 of aug,
	// columns 0..n-1) against the transformed right-hand side (column n).
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug.data[i*width+n]
		for j := i + 1; j < n; j++ {
			sum -= aug.data[i*width+j] * x[j]
		}
		pivot := aug.data[i*width+i]
		if math.Abs(pivot) < zeroPivotTol {
			return nil, ErrRankDeficient
		}
		x[i] = sum / pivot
	}

	return x, nil
}
