package strategy

import (
	"github.com/yohm/pdgame-m2/digraph"
	"github.com/yohm/pdgame-m2/state"
)

// ITG builds the Intra-Transition Graph: a functional graph on the 16
// states where state i links to the state reached when st plays both
// sides of the pairing against itself — A's view from state i, B's view
// from the mirrored state. Every node has out-degree exactly 1.
func (st Strategy) ITG() *digraph.Graph {
	g := digraph.New(state.NumStates)
	for i := 0; i < state.NumStates; i++ {
		n := st.nextITGState(state.FromID(i))
		g.AddLink(i, n)
	}

	return g
}

// nextITGState advances s by one step of self-play: A acts per st at s,
// B acts per st at the mirrored state s.SwapAB().
func (st Strategy) nextITGState(s state.State) int {
	actA := st.ActionAt(s)
	actB := st.ActionAt(s.SwapAB())

	return s.NextState(actA, actB).ID()
}

// DestsOfITG traces the ITG from every state until it enters a cycle,
// and records a node of that cycle for each state's orbit.
// Each state's orbit in a functional graph eventually repeats. A walk
// that revisits one of its own nodes records that node for every state
// on the walk; a walk that reaches a state already resolved by an
// earlier walk records that state's recorded node instead. Every entry
// is therefore a node on the cycle the orbit enters, but not necessarily
// the first cycle node reached from i (for TFT, state 9 records 6).
func (st Strategy) DestsOfITG() [state.NumStates]int {
	var dests [state.NumStates]int
	var fixed [state.NumStates]bool

	for i := 0; i < state.NumStates; i++ {
		var visited [state.NumStates]bool
		visited[i] = true

		next := st.nextITGState(state.FromID(i))
		for next >= 0 {
			if visited[next] || fixed[next] {
				break
			}
			visited[next] = true
			next = st.nextITGState(state.FromID(next))
		}

		d := next
		if next >= 0 && fixed[next] {
			d = dests[next]
		}

		for j := 0; j < state.NumStates; j++ {
			if visited[j] {
				dests[j] = d
				fixed[j] = true
			}
		}
	}

	return dests
}
