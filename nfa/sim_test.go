package nfa

import (
	"strings"
	"testing"
)

// matches compiles pattern and runs the simulator over input.
func matches(t *testing.T, pattern, input string) bool {
	t.Helper()
	n := compilePattern(t, pattern)
	return NewSimulator(n).Run([]byte(input))
}

func TestSimulator_Acceptance(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"abc", "abcd", false},
		{"abc", "", false},
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "c", false},
		{"a|b", "ab", false},
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "aab", false},
		{"a+", "", false},
		{"a+", "a", true},
		{"a+", "aaaa", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
		{"(ab)+c", "abc", true},
		{"(ab)+c", "ababc", true},
		{"(ab)+c", "abac", false},
		{"(ab)+c", "c", false},
		{"[a-c]{2,3}", "bc", true},
		{"[a-c]{2,3}", "bca", true},
		{"[a-c]{2,3}", "a", false},
		{"[a-c]{2,3}", "bcaa", false},
		{"a(b|c)*d", "ad", true},
		{"a(b|c)*d", "abcbcd", true},
		{"a(b|c)*d", "abxd", false},
		{"", "", true},
		{"", "a", false},
		{"()", "", true},
		{"()", "a", false},
		{"()*", "", true},
		{"a()b", "ab", true},
		{"a{0}", "", true},
		{"a{0}", "a", false},
		{"a{3}", "aaa", true},
		{"a{3}", "aa", false},
		{"a{3}", "aaaa", false},
		{"a{2,}", "a", false},
		{"a{2,}", "aa", true},
		{"a{2,}", "aaaaa", true},
		{"a{,2}", "", true},
		{"a{,2}", "aa", true},
		{"a{,2}", "aaa", false},
		{"a{2,4}", "a", false},
		{"a{2,4}", "aa", true},
		{"a{2,4}", "aaa", true},
		{"a{2,4}", "aaaa", true},
		{"a{2,4}", "aaaaa", false},
		{"(a|b){2}c", "abc", true},
		{"(a|b){2}c", "bac", true},
		{"(a|b){2}c", "ac", false},
		{"[a-]+", "a-a-", true},
		{"[a-]+", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			if got := matches(t, tt.pattern, tt.input); got != tt.want {
				t.Errorf("Run(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

// Nested unbounded quantifiers create epsilon cycles; closure traversal must
// deduplicate and terminate.
func TestSimulator_EpsilonCycles(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(a*)*", "", true},
		{"(a*)*", "aaaa", true},
		{"(a*)*", "b", false},
		{"(a*)+", "", true},
		{"(a+)*", "", true},
		{"(a+)+", "aaa", true},
		{"(a+)+", "", false},
		{"((a*)*)*", "aa", true},
		{"(a|b*)*", "abba", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			if got := matches(t, tt.pattern, tt.input); got != tt.want {
				t.Errorf("Run(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

// The simulator is linear in the input: a pathological backtracking pattern
// over a long non-matching input must complete quickly.
func TestSimulator_NoBlowup(t *testing.T) {
	n := compilePattern(t, "(a|a)*"+strings.Repeat("a?", 20)+"b")
	sim := NewSimulator(n)
	input := []byte(strings.Repeat("a", 5000))
	if sim.Run(input) {
		t.Error("accepted input missing required trailing 'b'")
	}
	input = append(input, 'b')
	if !sim.Run(input) {
		t.Error("rejected matching input")
	}
}

func TestSimulator_LargeBoundedRepeat(t *testing.T) {
	n := compilePattern(t, "a{1000}")
	sim := NewSimulator(n)
	if !sim.Run([]byte(strings.Repeat("a", 1000))) {
		t.Error("rejected exact repetition count")
	}
	if sim.Run([]byte(strings.Repeat("a", 999))) {
		t.Error("accepted undercount")
	}
	if sim.Run([]byte(strings.Repeat("a", 1001))) {
		t.Error("accepted overcount")
	}
}

// A Simulator is reusable across runs: results must not depend on prior runs.
func TestSimulator_Reuse(t *testing.T) {
	n := compilePattern(t, "(ab)+c")
	sim := NewSimulator(n)

	inputs := []struct {
		input string
		want  bool
	}{
		{"ababc", true},
		{"", false},
		{"abc", true},
		{"abab", false},
		{"ababc", true},
	}
	for _, tt := range inputs {
		if got := sim.Run([]byte(tt.input)); got != tt.want {
			t.Errorf("Run(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
