package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohm/pdgame-m2/action"
	"github.com/yohm/pdgame-m2/state"
	"github.com/yohm/pdgame-m2/strategy"
)

func TestParseAndString(t *testing.T) {
	acts := [state.NumStates]action.Action{
		action.Cooperate, action.Cooperate, action.Cooperate, action.Cooperate,
		action.Defect, action.Defect, action.Defect, action.Defect,
		action.Cooperate, action.Cooperate, action.Cooperate, action.Cooperate,
		action.Defect, action.Defect, action.Defect, action.Defect,
	}
	s1 := strategy.New(acts)
	require.Equal(t, action.Cooperate, s1.ActionAt(state.FromID(0)))
	require.Equal(t, action.Defect, s1.ActionAt(state.FromID(7)))
	require.Equal(t, action.Cooperate, s1.ActionAt(state.FromID(11)))
	require.Equal(t, action.Defect, s1.ActionAt(state.FromID(15)))

	require.Equal(t, "ccccddddccccdddd", s1.String())
	require.True(t, s1.Equal(strategy.Parse("ccccddddccccdddd")))

	require.Equal(t, action.Cooperate, s1.ActionAt(state.Parse("cccc")))
	require.Equal(t, action.Defect, s1.ActionAt(state.Parse("dddd")))
}

func TestParseSafeRejectsBadInput(t *testing.T) {
	_, err := strategy.ParseSafe("short")
	require.ErrorIs(t, err, strategy.ErrInvalidLength)

	_, err = strategy.ParseSafe("xcccccccccccccccc"[:16])
	require.ErrorIs(t, err, strategy.ErrInvalidChar)
}

func TestParsePanicsOnBadLength(t *testing.T) {
	require.Panics(t, func() { strategy.Parse("short") })
}

func TestAllD(t *testing.T) {
	alld := strategy.Parse("dddddddddddddddd")
	require.True(t, alld.IsDefensible())
	eff, err := alld.IsEfficient(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.False(t, eff)
	require.False(t, alld.IsEfficientTopo())

	dests := alld.DestsOfITG()
	for _, d := range dests {
		require.Equal(t, 15, d)
	}

	stat, err := alld.StationaryState(0.001, nil)
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		require.Less(t, stat[i], 0.01)
	}
	require.Greater(t, stat[15], 0.99)

	dist, err := alld.IsDistinguishable(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, dist)
	require.True(t, alld.IsDistinguishableTopo())
}

func TestAllC(t *testing.T) {
	allc := strategy.Parse("cccccccccccccccc")
	require.False(t, allc.IsDefensible())
	eff, err := allc.IsEfficient(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, eff)
	require.True(t, allc.IsEfficientTopo())

	dests := allc.DestsOfITG()
	for _, d := range dests {
		require.Equal(t, 0, d)
	}

	stat, err := allc.StationaryState(0.001, nil)
	require.NoError(t, err)
	for i := 1; i < 16; i++ {
		require.Less(t, stat[i], 0.01)
	}
	require.Greater(t, stat[0], 0.99)

	dist, err := allc.IsDistinguishable(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.False(t, dist)
	require.False(t, allc.IsDistinguishableTopo())
}

func TestTFT(t *testing.T) {
	tft := strategy.Parse("cdcdcdcdcdcdcdcd")
	require.True(t, tft.IsDefensible())
	eff, err := tft.IsEfficient(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.False(t, eff)
	require.False(t, tft.IsEfficientTopo())

	dests := tft.DestsOfITG()
	for _, d := range dests {
		require.Contains(t, []int{0, 6, 9, 15}, d)
	}

	stat, err := tft.StationaryState(0.001, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.25, stat[0], 0.01)
	require.InDelta(t, 0.25, stat[6], 0.01)
	require.InDelta(t, 0.25, stat[9], 0.01)
	require.InDelta(t, 0.25, stat[15], 0.01)

	dist, err := tft.IsDistinguishable(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.False(t, dist)
	require.False(t, tft.IsDistinguishableTopo())
}

// wsls is Win-Stay-Lose-Shift: cooperate iff the lowest bit (B's most
// recent action) agrees with bit 2 (A's most recent action).
func wsls() strategy.Strategy {
	var acts [state.NumStates]action.Action
	for i := 0; i < state.NumStates; i++ {
		if (i & 1) == ((i >> 2) & 1) {
			acts[i] = action.Cooperate
		} else {
			acts[i] = action.Defect
		}
	}

	return strategy.New(acts)
}

func TestWSLS(t *testing.T) {
	s := wsls()
	require.False(t, s.IsDefensible())
	eff, err := s.IsEfficient(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, eff)
	require.True(t, s.IsEfficientTopo())

	dests := s.DestsOfITG()
	for _, d := range dests {
		require.Equal(t, 0, d)
	}

	stat, err := s.StationaryState(0.001, nil)
	require.NoError(t, err)
	for i := 1; i < 16; i++ {
		require.Less(t, stat[i], 0.01)
	}
	require.Greater(t, stat[0], 0.99)

	dist, err := s.IsDistinguishable(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, dist)
	require.True(t, s.IsDistinguishableTopo())
}

// tf2t is Tit-For-Two-Tats: defect only when both of the lowest two bits
// (B's last two actions) are set.
func tf2t() strategy.Strategy {
	var acts [state.NumStates]action.Action
	for i := 0; i < state.NumStates; i++ {
		if (i & 3) == 3 {
			acts[i] = action.Defect
		} else {
			acts[i] = action.Cooperate
		}
	}

	return strategy.New(acts)
}

func TestTF2T(t *testing.T) {
	s := tf2t()
	require.False(t, s.IsDefensible())
	eff, err := s.IsEfficient(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, eff)
	require.True(t, s.IsEfficientTopo())

	dests := s.DestsOfITG()
	for _, d := range dests {
		require.Contains(t, []int{0, 15}, d)
	}

	stat, err := s.StationaryState(0.001, nil)
	require.NoError(t, err)
	require.Greater(t, stat[0], 0.99)
	for i := 1; i < 16; i++ {
		require.Less(t, stat[i], 0.01)
	}

	dist, err := s.IsDistinguishable(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.False(t, dist)
	require.False(t, s.IsDistinguishableTopo())
}

func TestTFTATFT(t *testing.T) {
	s := strategy.Parse("cdcddccdcdccdccd")
	require.True(t, s.IsDefensible())
	eff, err := s.IsEfficient(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, eff)

	dist, err := s.IsDistinguishable(strategy.DefaultEpsilon, strategy.DefaultTheta)
	require.NoError(t, err)
	require.True(t, dist)
	require.True(t, s.IsDistinguishableTopo())
}

func TestCrossCheckAgreesForAllScenarios(t *testing.T) {
	scenarios := []strategy.Strategy{
		strategy.Parse("dddddddddddddddd"),
		strategy.Parse("cccccccccccccccc"),
		strategy.Parse("cdcdcdcdcdcdcdcd"),
		wsls(),
		tf2t(),
		strategy.Parse("cdcddccdcdccdccd"),
	}
	for _, s := range scenarios {
		require.NoError(t, strategy.CrossCheck(s))
	}
}
