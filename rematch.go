// Package rematch provides a small regex engine for whole-string acceptance.
//
// rematch answers a single question: does an input string fully conform to a
// pattern? Matching is implicitly anchored at both ends — there is no search,
// no captures, and no submatch positions. The pattern dialect supports
// literals, grouping, alternation, character classes with ranges, and the
// quantifiers *, +, ? and {m,n}. There are no escape sequences, anchors,
// backreferences or negated classes.
//
// Patterns compile through a three-stage pipeline: a recursive-descent parser
// produces a token tree, Thompson's construction turns the tree into an NFA,
// and acceptance is decided by subset simulation in O(states * input) time —
// no backtracking, no exponential blowup. Patterns whose language is a small
// finite set bypass the NFA entirely and match by literal comparison, with an
// Aho-Corasick prefilter for alternation sets.
//
// Basic usage:
//
//	re, err := rematch.Compile("a(b|c)*d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("abcbcd") // true
//	re.MatchString("abcbc")  // false: the whole input must match
//
// One-shot matching:
//
//	ok, err := rematch.Match("[a-c]{2,3}", "bca")
//
// Both the pattern and the input are treated as raw bytes: each byte is one
// character of the alphabet, so classes like [a-z] operate on ASCII and
// multi-byte UTF-8 input is matched byte-wise.
package rematch

import (
	"github.com/coregx/rematch/meta"
)

// Regex is a compiled pattern. It is immutable and safe for concurrent use.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// On failure the returned error wraps a *parser.ParseError carrying the
// error kind and the byte position of the offending character.
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom engine configuration.
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// Match reports whether the pattern accepts the entire input. It is a
// convenience for one-shot use; compile once with Compile when matching
// repeatedly.
func Match(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}

// Match reports whether the compiled pattern accepts the entire input.
func (re *Regex) Match(input []byte) bool {
	return re.engine.IsMatch(input)
}

// MatchString reports whether the compiled pattern accepts the entire input
// string.
func (re *Regex) MatchString(input string) bool {
	return re.engine.IsMatchString(input)
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// Stats returns a snapshot of the engine's activity counters.
func (re *Regex) Stats() meta.Stats {
	return re.engine.Stats()
}

// ResetStats zeroes the engine's activity counters.
func (re *Regex) ResetStats() {
	re.engine.ResetStats()
}
