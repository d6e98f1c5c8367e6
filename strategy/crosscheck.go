package strategy

import "fmt"

// The four checks CrossCheck compares are reached through package-level
// function variables rather than direct method calls, so a white-box
// test can force a disagreement between the exact and topological checks
// without needing a genuinely buggy strategy — none of the worked
// scenarios ever produce one, by construction.
var (
	isEfficientFn = func(st Strategy) (bool, error) {
		return st.IsEfficient(DefaultEpsilon, DefaultTheta)
	}
	isEfficientTopoFn = Strategy.IsEfficientTopo

	isDistinguishableFn = func(st Strategy) (bool, error) {
		return st.IsDistinguishable(DefaultEpsilon, DefaultTheta)
	}
	isDistinguishableTopoFn = Strategy.IsDistinguishableTopo
)

// CrossCheck verifies that the exact, stationary-distribution-based
// checks and their topological surrogates agree on both efficiency and
// distinguishability for st, using the package defaults for epsilon and
// theta. Disagreement signals a bug in one of the two independent
// implementations rather than a property of st itself, so it is reported
// as ErrInvariantContradiction rather than a plain boolean.
func CrossCheck(st Strategy) error {
	efficient, err := isEfficientFn(st)
	if err != nil {
		return fmt.Errorf("strategy: CrossCheck: %w", err)
	}
	efficientTopo := isEfficientTopoFn(st)
	if efficient != efficientTopo {
		return fmt.Errorf("%w: efficiency: exact=%v topo=%v for %q", ErrInvariantContradiction, efficient, efficientTopo, st.String())
	}

	distinguishable, err := isDistinguishableFn(st)
	if err != nil {
		return fmt.Errorf("strategy: CrossCheck: %w", err)
	}
	distinguishableTopo := isDistinguishableTopoFn(st)
	if distinguishable != distinguishableTopo {
		return fmt.Errorf("%w: distinguishability: exact=%v topo=%v for %q", ErrInvariantContradiction, distinguishable, distinguishableTopo, st.String())
	}

	return nil
}
