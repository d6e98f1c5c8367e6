package strategy

import (
	"github.com/yohm/pdgame-m2/action"
	"github.com/yohm/pdgame-m2/state"
)

// defensibilityInf is larger than any reachable path weight: weights are
// relative payoffs in {-1,0,1} and the longest simple path visits all 16
// states, so no genuine shortest path exceeds 16 in magnitude.
const defensibilityInf = 32

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// IsDefensible reports whether st can never end up strictly behind any
// coplayer in cumulative payoff, for any opening state: the
// signed graph whose edge i->j carries State(i)'s relative payoff toward
// state j has no negative-weight cycle. Detected via an early-exit
// Floyd-Warshall over the 16x16 state graph.
func (st Strategy) IsDefensible() bool {
	const n = state.NumStates

	var d [n][n]int
	for i := range d {
		for j := range d[i] {
			d[i][j] = defensibilityInf
		}
	}

	for i := 0; i < n; i++ {
		si := state.FromID(i)
		actA := st.ActionAt(si)
		for _, actB := range [2]action.Action{action.Cooperate, action.Defect} {
			j := si.NextState(actA, actB).ID()
			d[i][j] = si.RelativePayoff()
		}
		if d[i][i] < 0 {
			return false
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d[i][j] = minInt(d[i][j], d[i][k]+d[k][j])
			}
			if d[i][i] < 0 {
				return false
			}
		}
	}

	return true
}
