// Package nfa compiles pattern token trees into Thompson NFAs and decides
// whole-input acceptance by subset simulation.
//
// States live in a single arena indexed by StateID. Transitions and epsilon
// edges store IDs rather than pointers, so the cyclic graphs produced by
// unbounded quantifiers carry no pointer cycles and the whole automaton is
// released as one unit.
package nfa

import (
	"fmt"
)

// StateID uniquely identifies an NFA state within its arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// State is a single NFA state. Byte-consuming edges live in transitions,
// keyed by the byte consumed; epsilon edges are a separate list and never
// appear as a transition key.
type State struct {
	id          StateID
	transitions map[byte][]StateID
	epsilon     []StateID
	isStart     bool
	isTerminal  bool
}

// ID returns the state's unique identifier.
func (s *State) ID() StateID {
	return s.id
}

// IsStart reports whether this is the automaton's entry state.
func (s *State) IsStart() bool {
	return s.isStart
}

// IsTerminal reports whether this is the automaton's accepting state.
func (s *State) IsTerminal() bool {
	return s.isTerminal
}

// Next returns the states reachable from s by consuming b.
// The returned slice aliases internal storage and must not be modified.
func (s *State) Next(b byte) []StateID {
	return s.transitions[b]
}

// Epsilon returns the states reachable from s without consuming input.
// The returned slice aliases internal storage and must not be modified.
func (s *State) Epsilon() []StateID {
	return s.epsilon
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	flags := ""
	if s.isStart {
		flags += "S"
	}
	if s.isTerminal {
		flags += "T"
	}
	return fmt.Sprintf("State(%d%s, %d byte edges, %d epsilon edges)",
		s.id, flags, len(s.transitions), len(s.epsilon))
}

// NFA is a compiled automaton. It has exactly one start and one terminal
// state (the Thompson invariant for the outermost fragment). An NFA is
// immutable after construction and safe for concurrent readers; per-search
// bookkeeping lives in Simulator.
type NFA struct {
	states   []State
	start    StateID
	terminal StateID
}

// Start returns the automaton's entry state ID.
func (n *NFA) Start() StateID {
	return n.start
}

// Terminal returns the automaton's accepting state ID.
func (n *NFA) Terminal() StateID {
	return n.terminal
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// States returns the total number of states in the arena.
func (n *NFA) States() int {
	return len(n.states)
}

// String returns a human-readable representation of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, terminal: %d}",
		len(n.states), n.start, n.terminal)
}
