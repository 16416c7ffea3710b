package nfa

import (
	"fmt"
)

// BuildError reports a malformed automaton detected during Builder
// validation. Compilation of a well-formed token tree never produces one;
// it exists to catch construction bugs rather than user input.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa build error: %s", e.Message)
}
