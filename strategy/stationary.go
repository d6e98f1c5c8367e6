package strategy

import (
	"fmt"

	"github.com/yohm/pdgame-m2/matrix"
	"github.com/yohm/pdgame-m2/state"
)

// DefaultEpsilon is the implementation error rate used when a caller does
// not supply one explicitly.
const DefaultEpsilon = 0.00001

// DefaultTheta is the stationary-mass threshold against which efficiency
// and distinguishability are judged.
const DefaultTheta = 0.95

// StationaryState computes the stationary distribution of the noisy
// Markov chain induced by st playing against coplayer (or against itself,
// when coplayer is nil), under implementation error rate e: with
// probability e each player's intended action is flipped independently
// after it is chosen.
//
// The distribution is the solution of the 17x16 linear system formed by
// the 16 balance equations (Ax = x, rewritten as (A-I)x = 0) plus one
// normalization row (sum(x) = 1), solved in the least-squares sense.
func (st Strategy) StationaryState(e float64, coplayer *Strategy) ([state.NumStates]float64, error) {
	var zero [state.NumStates]float64

	cp := coplayer
	if cp == nil {
		cp = &st
	}

	A, err := matrix.NewDense(state.NumStates+1, state.NumStates)
	if err != nil {
		return zero, fmt.Errorf("strategy: StationaryState: %w", err)
	}

	for i := 0; i < state.NumStates; i++ {
		si := state.FromID(i)
		for j := 0; j < state.NumStates; j++ {
			sj := state.FromID(j)

			actA := st.ActionAt(sj)
			actB := cp.ActionAt(sj.SwapAB())
			next := sj.NextState(actA, actB)

			d := next.NumDiffInT1(si)

			var p float64
			switch d {
			case -1:
				p = 0.0
			case 0:
				p = (1 - e) * (1 - e)
			case 1:
				p = (1 - e) * e
			case 2:
				p = e * e
			default:
				return zero, fmt.Errorf("strategy: StationaryState: impossible NumDiffInT1 value %d", d)
			}

			if err := A.Set(i, j, p); err != nil {
				return zero, fmt.Errorf("%w: %w", ErrSolverFailed, err)
			}
		}

		diag, err := A.At(i, i)
		if err != nil {
			return zero, fmt.Errorf("%w: %w", ErrSolverFailed, err)
		}
		if err := A.Set(i, i, diag-1.0); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrSolverFailed, err)
		}
	}

	for j := 0; j < state.NumStates; j++ {
		if err := A.Set(state.NumStates, j, 1.0); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrSolverFailed, err)
		}
	}

	b := make([]float64, state.NumStates+1)
	b[state.NumStates] = 1.0

	x, err := matrix.SolveLeastSquares(A, b)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}

	var ans [state.NumStates]float64
	copy(ans[:], x)

	return ans, nil
}

// IsEfficient reports whether self-play stationary mass concentrates on
// State 0 (mutual cooperation) above theta, under noise e.
func (st Strategy) IsEfficient(e, theta float64) (bool, error) {
	dist, err := st.StationaryState(e, nil)
	if err != nil {
		return false, err
	}

	return dist[0] > theta, nil
}

// allC is the constant always-cooperate strategy used as the reference
// coplayer for distinguishability.
var allC = Parse("cccccccccccccccc")

// IsDistinguishable reports whether st can be told apart from AllC: its
// stationary mass on State 0 against AllC falls below theta, under noise e.
func (st Strategy) IsDistinguishable(e, theta float64) (bool, error) {
	dist, err := st.StationaryState(e, &allC)
	if err != nil {
		return false, err
	}

	return dist[0] < theta, nil
}
