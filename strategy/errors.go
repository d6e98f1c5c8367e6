package strategy

import "errors"

var (
	// ErrInvalidLength is returned when a textual strategy is not exactly
	// state.NumStates characters long.
	ErrInvalidLength = errors.New("strategy: textual form must be exactly 16 characters")

	// ErrInvalidChar is returned when a textual strategy has the right
	// length but contains a byte other than 'c' or 'd'.
	ErrInvalidChar = errors.New("strategy: textual form may contain only 'c' or 'd'")

	// ErrSolverFailed wraps a failure of the underlying least-squares
	// solver while computing a stationary distribution.
	ErrSolverFailed = errors.New("strategy: failed to solve for stationary distribution")

	// ErrInvariantContradiction is returned by CrossCheck when the exact
	// (stationary-distribution) and topological checks disagree on
	// efficiency or distinguishability for the same strategy.
	ErrInvariantContradiction = errors.New("strategy: exact and topological checks disagree")
)
