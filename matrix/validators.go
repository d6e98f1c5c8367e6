// Package matrix: shape validators shared by the linear-algebra kernels.
package matrix

import "fmt"

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return fmt.Errorf("matrix: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateOverdetermined ensures m has at least as many rows as columns,
// the shape SolveLeastSquares requires.
func ValidateOverdetermined(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < m.Cols() {
		return fmt.Errorf("matrix: %dx%d has fewer rows than columns: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(v) == want.
func ValidateVecLen(v []float64, want int) error {
	if len(v) != want {
		return fmt.Errorf("matrix: vector length %d, want %d: %w", len(v), want, ErrDimensionMismatch)
	}

	return nil
}
