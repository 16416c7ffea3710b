// Package literal extracts exact literal sets from pattern token trees.
//
// When a pattern denotes a small finite language — a plain literal, a
// character class, an alternation of literals, or any composition of those —
// the full set of accepted strings can be enumerated up front. The meta
// engine uses such sets to bypass the NFA entirely: acceptance becomes a
// string-equality check, optionally prefiltered with Aho-Corasick.
package literal

import (
	"bytes"
	"strings"
)

// Seq is an ordered, deduplicated set of alternative literals.
type Seq struct {
	lits   [][]byte
	minLen int
	maxLen int
}

// NewSeq creates an empty sequence.
func NewSeq() *Seq {
	return &Seq{}
}

// Add appends lit to the sequence unless an equal literal is already present.
func (s *Seq) Add(lit []byte) {
	for _, have := range s.lits {
		if bytes.Equal(have, lit) {
			return
		}
	}
	if len(s.lits) == 0 || len(lit) < s.minLen {
		s.minLen = len(lit)
	}
	if len(lit) > s.maxLen {
		s.maxLen = len(lit)
	}
	s.lits = append(s.lits, lit)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// Get returns the i-th literal in insertion order.
func (s *Seq) Get(i int) []byte {
	return s.lits[i]
}

// MinLen returns the length of the shortest literal. Zero for an empty Seq.
func (s *Seq) MinLen() int {
	return s.minLen
}

// MaxLen returns the length of the longest literal. Zero for an empty Seq.
func (s *Seq) MaxLen() int {
	return s.maxLen
}

// Contains reports whether input equals one of the literals. Candidates are
// filtered by length before comparing.
func (s *Seq) Contains(input []byte) bool {
	if len(input) < s.minLen || len(input) > s.maxLen {
		return false
	}
	for _, lit := range s.lits {
		if len(lit) == len(input) && bytes.Equal(lit, input) {
			return true
		}
	}
	return false
}

// String returns a human-readable representation of the sequence.
func (s *Seq) String() string {
	var b strings.Builder
	b.WriteString("Seq[")
	for i, lit := range s.lits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(lit))
	}
	b.WriteString("]")
	return b.String()
}
