package nfa

import (
	"fmt"
)

// Builder constructs an NFA incrementally. The compiler allocates states and
// wires edges through it, then finalizes with Build.
type Builder struct {
	states   []State
	start    StateID
	terminal StateID
}

// NewBuilder creates a builder with default capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a builder with the given initial arena
// capacity.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states:   make([]State, 0, capacity),
		start:    InvalidState,
		terminal: InvalidState,
	}
}

// AddState allocates a fresh state with no edges and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id})
	return id
}

// AddTransition adds a byte-consuming edge from -> to on c.
func (b *Builder) AddTransition(from StateID, c byte, to StateID) {
	s := &b.states[from]
	if s.transitions == nil {
		s.transitions = make(map[byte][]StateID)
	}
	s.transitions[c] = append(s.transitions[c], to)
}

// AddEpsilon adds a non-consuming edge from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	s := &b.states[from]
	s.epsilon = append(s.epsilon, to)
}

// SetEndpoints marks the outermost fragment's entry and exit states. Only
// these two states carry the start/terminal flags.
func (b *Builder) SetEndpoints(start, terminal StateID) {
	b.start = start
	b.terminal = terminal
}

// States returns the current number of allocated states.
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the automaton is well-formed: endpoints are set and
// every edge targets an allocated state.
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{Message: "start state out of bounds", StateID: b.start}
	}
	if b.terminal == InvalidState {
		return &BuildError{Message: "terminal state not set", StateID: InvalidState}
	}
	if int(b.terminal) >= len(b.states) {
		return &BuildError{Message: "terminal state out of bounds", StateID: b.terminal}
	}

	for i := range b.states {
		s := &b.states[i]
		for c, targets := range s.transitions {
			for _, to := range targets {
				if int(to) >= len(b.states) {
					return &BuildError{
						Message: fmt.Sprintf("transition on %q targets invalid state %d", c, to),
						StateID: s.id,
					}
				}
			}
		}
		for _, to := range s.epsilon {
			if int(to) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("epsilon edge targets invalid state %d", to),
					StateID: s.id,
				}
			}
		}
	}

	return nil
}

// Build validates and finalizes the NFA, marking the endpoint flags.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.states[b.start].isStart = true
	b.states[b.terminal].isTerminal = true
	return &NFA{
		states:   b.states,
		start:    b.start,
		terminal: b.terminal,
	}, nil
}
