package strategy

import (
	"github.com/yohm/pdgame-m2/action"
	"github.com/yohm/pdgame-m2/digraph"
	"github.com/yohm/pdgame-m2/state"
)

// expandViaSinkSCCs adds, for every node in every sink SCC of gn, links
// to its noised neighbors (state IDs reached by flipping bit 0 or bit 2,
// i.e. B's or A's most recent action) that are not already present. This
// models the effect of a vanishingly rare single implementation error:
// once self-play is confined to a sink component, a single noise event
// can still move the state, so those links must be considered reachable
// too.
func expandViaSinkSCCs(gn *digraph.Graph) {
	for _, sink := range gn.SinkSCCs() {
		for _, from := range sink {
			for _, flip := range [2]int{1, 4} {
				to := from ^ flip
				if !gn.HasLink(from, to) {
					gn.AddLink(from, to)
				}
			}
		}
	}
}

// topologicalCheck runs the shared "grow gn by sink-SCC noise expansion
// until every state is classified relative to State 0" loop used by both
// IsEfficientTopo and IsDistinguishableTopo. It returns true the moment
// some state i is found mutually reachable with 0 (the asymmetric
// outcome each caller treats as its positive result), and false once
// every state has been classified without that happening.
func topologicalCheck(gn *digraph.Graph) bool {
	const n = state.NumStates

	checked := make([]bool, n)
	checked[0] = true

	complete := func() bool {
		for _, c := range checked {
			if !c {
				return false
			}
		}

		return true
	}

	for round := 0; !complete(); round++ {
		if round > 0 {
			expandViaSinkSCCs(gn)
		}

		for i := 1; i < n; i++ {
			if checked[i] {
				continue
			}
			if gn.Reachable(i, 0) {
				if gn.Reachable(0, i) {
					return true
				}
				checked[i] = true
			}
		}
	}

	return false
}

// IsEfficientTopo is a topological surrogate for IsEfficient: it avoids
// the noisy stationary-distribution computation, reasoning instead about
// reachability in the Intra-Transition Graph as noise progressively
// links sink SCCs to their noised neighbors. A strategy that defects at
// State 0 is never efficient; otherwise the strategy is inefficient iff
// some state ends up mutually reachable with State 0.
func (st Strategy) IsEfficientTopo() bool {
	if st.ActionAt(state.FromID(0)) != action.Cooperate {
		return false
	}

	return !topologicalCheck(st.ITG())
}

// IsDistinguishableTopo is a topological surrogate for IsDistinguishable:
// it builds the transition graph of st playing against the constant AllC
// coplayer and asks whether any state ends up mutually reachable with
// State 0. A strategy that defects at State 0 is trivially
// distinguishable from AllC.
func (st Strategy) IsDistinguishableTopo() bool {
	if st.ActionAt(state.FromID(0)) != action.Cooperate {
		return true
	}

	gn := digraph.New(state.NumStates)
	for i := 0; i < state.NumStates; i++ {
		sa := state.FromID(i)
		sb := sa.SwapAB()

		actA := st.ActionAt(sa)
		actB := allC.ActionAt(sb)

		j := sa.NextState(actA, actB).ID()
		gn.AddLink(i, j)
	}

	return topologicalCheck(gn)
}
