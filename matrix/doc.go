// Package matrix provides the dense linear-algebra substrate used to solve
// for stationary distributions under implementation noise.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - SolveLeastSquares, a column-oriented Householder QR solver
//     generalized to rectangular (overdetermined) systems.
//
// Matrices here are always small and dense (at most 17×16 in this
// module), so no sparse representation is provided.
package matrix
