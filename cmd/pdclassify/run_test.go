package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yohm/pdgame-m2/strategy"
)

func TestRunWithNoChecksPassesEveryCandidate(t *testing.T) {
	req := Request{Workers: 4}
	result, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, uint64(numStrategies), result.NumCandidates)
	require.Equal(t, uint64(numStrategies), result.NumPassed)
	require.Len(t, result.Passed, numStrategies)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Request{Workers: 4})
	require.Error(t, err)
}

func TestRunDefensibilityFiltersAllCButKeepsAllD(t *testing.T) {
	req := Request{CheckDefensibility: true, Workers: 2}
	result, err := Run(context.Background(), req)
	require.NoError(t, err)

	require.Contains(t, result.Passed, "dddddddddddddddd")
	require.NotContains(t, result.Passed, "cccccccccccccccc")
}

func TestRunDefaultsWorkerCountWhenUnset(t *testing.T) {
	result, err := Run(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, uint64(numStrategies), result.NumCandidates)
}

// TestRunCrossChecksEveryStrategy exercises the invariant that the exact
// and topological checks agree across the full 65536-strategy space, not
// just the worked examples: classifyRange aborts with
// strategy.ErrInvariantContradiction the moment it finds a disagreement,
// so a clean NoError is itself the assertion. Efficiency is compared for
// every strategy; distinguishability only for the strategies that pass
// the efficiency check, since classifyRange skips the rest.
func TestRunCrossChecksEveryStrategy(t *testing.T) {
	req := Request{
		CheckEfficiency:      true,
		CheckDistinguishable: true,
		Epsilon:              strategy.DefaultEpsilon,
		Theta:                strategy.DefaultTheta,
		Workers:              8,
	}
	result, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, uint64(numStrategies), result.NumCandidates)
}
