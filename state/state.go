// Package state models the memory-2 situation of a two-player iterated
// Prisoner's Dilemma: the last two moves of each player, encoded both as
// a semantic 4-tuple and as a bijective 4-bit ID in [0,15].
package state

import (
	"fmt"

	"github.com/yohm/pdgame-m2/action"
)

// NumStates is the fixed size of the memory-2 state space: 2^4.
const NumStates = 16

// State is the ordered 4-tuple (a_2, a_1, b_2, b_1): player A's action two
// rounds ago, A's most recent action, and likewise for player B.
//
// ID is the bijection (a_2<<3)|(a_1<<2)|(b_2<<1)|b_1 with D=1, C=0, so
// State(0) == "cccc" (the AllC fixed point) and State(15) == "dddd" (the
// AllD fixed point). State is a pure value type; all its operations are
// total on valid inputs.
type State struct {
	A2, A1, B2, B1 action.Action
}

// New builds a State from its four components.
func New(a2, a1, b2, b1 action.Action) State {
	return State{A2: a2, A1: a1, B2: b2, B1: b1}
}

// FromID reconstructs the State whose ID() equals id. Panics if id is
// outside [0,15] — an out-of-range ID is a programming error.
func FromID(id int) State {
	if id < 0 || id >= NumStates {
		panic(fmt.Sprintf("state: FromID: id %d out of range [0,%d)", id, NumStates))
	}
	bit := func(shift uint) action.Action {
		if (id>>shift)&1 == 1 {
			return action.Defect
		}

		return action.Cooperate
	}

	return State{A2: bit(3), A1: bit(2), B2: bit(1), B1: bit(0)}
}

// Parse builds a State from its 4-character textual form "a_2 a_1 b_2 b_1"
// over {'c','d'}. Panics if s is not exactly 4 bytes — a malformed string
// is a programming error, not a recoverable condition.
func Parse(s string) State {
	if len(s) != 4 {
		panic(fmt.Sprintf("state: Parse: want 4-character string, got %q", s))
	}

	return State{
		A2: action.C2A(s[0]),
		A1: action.C2A(s[1]),
		B2: action.C2A(s[2]),
		B1: action.C2A(s[3]),
	}
}

// ID returns the bijective integer index of s in [0, NumStates).
func (s State) ID() int {
	id := 0
	set := func(a action.Action, shift uint) {
		if a == action.Defect {
			id |= 1 << shift
		}
	}
	set(s.A2, 3)
	set(s.A1, 2)
	set(s.B2, 1)
	set(s.B1, 0)

	return id
}

// String renders the 4-character textual form "a_2 a_1 b_2 b_1".
func (s State) String() string {
	return string([]byte{
		action.A2C(s.A2), action.A2C(s.A1), action.A2C(s.B2), action.A2C(s.B1),
	})
}

// NextState shifts history forward one round: the actions just played
// (actA, actB) become the new "most recent" slot, and the old most-recent
// slot becomes the new "two rounds ago" slot.
func (s State) NextState(actA, actB action.Action) State {
	return State{A2: s.A1, A1: actA, B2: s.B1, B1: actB}
}

// PossiblePrevStates returns the ordered 4-sequence of states consistent
// with s's (a_2, b_2) pair from which a one-step transition could have
// produced s's (a_2, b_2) as the new "two rounds ago" slot — i.e. the four
// extensions of s's own (a_2, b_2) over the two free action slots, in the
// fixed order (C,C), (C,D), (D,C), (D,D) for (a_{-1}, b_{-1}).
func (s State) PossiblePrevStates() [4]State {
	return [4]State{
		{A2: action.Cooperate, A1: s.A2, B2: action.Cooperate, B1: s.B2},
		{A2: action.Cooperate, A1: s.A2, B2: action.Defect, B1: s.B2},
		{A2: action.Defect, A1: s.A2, B2: action.Cooperate, B1: s.B2},
		{A2: action.Defect, A1: s.A2, B2: action.Defect, B1: s.B2},
	}
}

// SwapAB returns the same situation viewed from B's perspective.
func (s State) SwapAB() State {
	return State{A2: s.B2, A1: s.B1, B2: s.A2, B1: s.A1}
}

// RelativePayoff returns A's single-round payoff minus B's, from the last
// round of play: -1 if A cooperated and B defected, +1 if A defected and
// B cooperated, 0 if they played the same move.
func (s State) RelativePayoff() int {
	switch {
	case s.A1 == action.Cooperate && s.B1 == action.Defect:
		return -1
	case s.A1 == action.Defect && s.B1 == action.Cooperate:
		return 1
	default:
		return 0
	}
}

// NumDiffInT1 compares s against other. If their (a_2, b_2) pairs differ,
// no one-step transition can reach other from a common predecessor, so -1
// is returned. Otherwise the Hamming distance over {a_1, b_1} — 0, 1, or
// 2 — is returned; this is used to weight noise transition probabilities.
func (s State) NumDiffInT1(other State) int {
	if s.A2 != other.A2 || s.B2 != other.B2 {
		return -1
	}

	diff := 0
	if s.A1 != other.A1 {
		diff++
	}
	if s.B1 != other.B1 {
		diff++
	}

	return diff
}

// NoisedStates returns the two states that differ from s in exactly one
// of {a_1, b_1} — the two single-action implementation-noise flips.
func (s State) NoisedStates() [2]State {
	return [2]State{
		{A2: s.A2, A1: s.A1.Other(), B2: s.B2, B1: s.B1},
		{A2: s.A2, A1: s.A1, B2: s.B2, B1: s.B1.Other()},
	}
}
