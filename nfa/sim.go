package nfa

import (
	"github.com/coregx/rematch/internal/sparse"
)

// Simulator decides whole-input acceptance by subset simulation: it tracks
// the epsilon-closure of the set of states the automaton could be in after
// each input byte. Runtime is O(states * len(input)) with no backtracking.
//
// A Simulator pre-allocates its working sets and may be reused across runs,
// but a single Simulator must not be shared between goroutines. The
// underlying NFA is read-only and may back any number of Simulators.
type Simulator struct {
	nfa     *NFA
	current *sparse.Set
	next    *sparse.Set
	stack   []StateID // worklist for epsilon closure
}

// NewSimulator creates a simulator for the given NFA.
func NewSimulator(n *NFA) *Simulator {
	capacity := n.States()
	return &Simulator{
		nfa:     n,
		current: sparse.New(capacity),
		next:    sparse.New(capacity),
		stack:   make([]StateID, 0, capacity),
	}
}

// Run reports whether the NFA accepts the entire input.
func (s *Simulator) Run(input []byte) bool {
	s.current.Clear()
	s.addClosure(s.current, s.nfa.Start())

	for _, b := range input {
		s.next.Clear()
		for _, id := range s.current.Values() {
			for _, to := range s.nfa.State(StateID(id)).Next(b) {
				s.addClosure(s.next, to)
			}
		}
		if s.next.IsEmpty() {
			return false
		}
		s.current, s.next = s.next, s.current
	}

	for _, id := range s.current.Values() {
		if s.nfa.State(StateID(id)).IsTerminal() {
			return true
		}
	}
	return false
}

// addClosure inserts id and every state reachable from it by epsilon edges
// into set. The sparse set deduplicates, so epsilon cycles terminate.
func (s *Simulator) addClosure(set *sparse.Set, id StateID) {
	if set.Contains(uint32(id)) {
		return
	}
	set.Insert(uint32(id))
	s.stack = append(s.stack[:0], id)
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		for _, to := range s.nfa.State(top).Epsilon() {
			if !set.Contains(uint32(to)) {
				set.Insert(uint32(to))
				s.stack = append(s.stack, to)
			}
		}
	}
}
