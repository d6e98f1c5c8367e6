// Package strategy implements the Strategy Analysis Engine: a total
// function from memory-2 State to Action, together with the four
// game-theoretic checks built on it — defensibility, efficiency (exact
// and topological), and distinguishability from AllC (exact and
// topological).
package strategy

import (
	"fmt"

	"github.com/yohm/pdgame-m2/action"
	"github.com/yohm/pdgame-m2/state"
)

// Strategy is a total function State -> Action, stored as a 16-entry
// action table indexed by State.ID(). The zero value is not meaningful;
// construct via New or Parse.
type Strategy struct {
	actions [state.NumStates]action.Action
}

// New builds a Strategy from a 16-entry action table, in State-ID order.
// The array type fixes the length at compile time, so New never panics.
func New(acts [state.NumStates]action.Action) Strategy {
	return Strategy{actions: acts}
}

// Parse builds a Strategy from its 16-character textual form over
// {'c','d'}; the i-th character is the prescribed action at State(i).
// Panics if s is not exactly 16 bytes.
func Parse(s string) Strategy {
	if len(s) != state.NumStates {
		panic(fmt.Sprintf("strategy: Parse: want %d-character string, got %d", state.NumStates, len(s)))
	}

	var st Strategy
	for i := 0; i < state.NumStates; i++ {
		st.actions[i] = action.C2A(s[i])
	}

	return st
}

// ParseSafe is the non-panicking counterpart to Parse, for validating
// strategy strings that originate outside the program (CLI arguments,
// config files) rather than from code that already guarantees the
// 16-character invariant.
func ParseSafe(s string) (Strategy, error) {
	if len(s) != state.NumStates {
		return Strategy{}, fmt.Errorf("%w: got %d characters", ErrInvalidLength, len(s))
	}

	var st Strategy
	for i := 0; i < state.NumStates; i++ {
		c := s[i]
		if c != 'c' && c != 'd' {
			return Strategy{}, fmt.Errorf("%w: byte %d is %q, want 'c' or 'd'", ErrInvalidChar, i, c)
		}
		st.actions[i] = action.C2A(c)
	}

	return st, nil
}

// ActionAt reads the prescribed action at s.
func (st Strategy) ActionAt(s state.State) action.Action {
	return st.actions[s.ID()]
}

// SetAction writes the prescribed action at s. Build-time mutation only —
// Strategy is otherwise treated as an immutable value.
func (st *Strategy) SetAction(s state.State, a action.Action) {
	st.actions[s.ID()] = a
}

// String renders the 16-character textual form; round-trips through
// Parse byte-for-byte.
func (st Strategy) String() string {
	buf := make([]byte, state.NumStates)
	for i, a := range st.actions {
		buf[i] = action.A2C(a)
	}

	return string(buf)
}

// Equal reports whether st and other prescribe the same action at every
// state.
func (st Strategy) Equal(other Strategy) bool {
	return st.actions == other.actions
}
