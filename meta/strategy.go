package meta

import (
	"fmt"

	"github.com/coregx/rematch/literal"
)

// Strategy represents the execution strategy for acceptance checks.
//
// The meta engine chooses between:
//   - UseLiteral: single exact literal, plain byte comparison
//   - UseLiteralSet: small finite literal set, Aho-Corasick prefilter plus
//     set membership
//   - UseNFA: general case, Thompson NFA subset simulation
//
// Strategy selection is automatic based on what the literal extractor can
// prove about the pattern.
type Strategy int

const (
	// UseNFA runs the Thompson NFA simulator.
	// Selected whenever the pattern's language cannot be enumerated:
	// quantifiers, large classes, or alternation cross products beyond the
	// extraction caps.
	UseNFA Strategy = iota

	// UseLiteral compares the input against a single literal.
	// Selected when the pattern accepts exactly one string, e.g. `abc` or
	// `a(bc)d`. Matching is one bytes.Equal call.
	UseLiteral

	// UseLiteralSet checks membership in an enumerated literal set.
	// Selected when the pattern accepts a small finite set of strings, e.g.
	// `foo|bar|baz` or `[ab]c`. The input is first run through an
	// Aho-Corasick automaton over the set: since a full match must equal one
	// of the literals, an input containing none of them is rejected without
	// any comparisons. Survivors are verified by length-filtered equality.
	UseLiteralSet
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "NFA"
	case UseLiteral:
		return "Literal"
	case UseLiteralSet:
		return "LiteralSet"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// selectStrategy picks the execution strategy from the extracted literal set.
// lits is nil when extraction failed or was disabled.
func selectStrategy(lits *literal.Seq) Strategy {
	switch {
	case lits == nil || lits.IsEmpty():
		return UseNFA
	case lits.Len() == 1:
		return UseLiteral
	default:
		return UseLiteralSet
	}
}
