package meta

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/nfa"
)

// Engine executes acceptance checks for one compiled pattern. It holds the
// backends the selected strategy needs and nothing else: literal strategies
// skip NFA compilation entirely.
//
// An Engine is safe for concurrent use. The NFA is immutable; per-search
// simulator state is pooled.
type Engine struct {
	pattern  string
	strategy Strategy

	// For UseLiteral and UseLiteralSet: the exact accepted set.
	lits *literal.Seq

	// For UseLiteralSet: multi-literal prefilter. A full match must equal
	// one of the literals, so an input containing none of them anywhere
	// cannot match. nil when the set contains the empty string (which occurs
	// everywhere and anywhere) or when the automaton failed to build.
	ahoCorasick *ahocorasick.Automaton

	// For UseNFA: the compiled automaton and a pool of reusable simulators.
	nfa  *nfa.NFA
	sims sync.Pool

	stats Stats
}

// Stats counts engine activity per backend. Counters are updated atomically
// and can be read while searches are in flight.
type Stats struct {
	// LiteralChecks counts UseLiteral comparisons.
	LiteralChecks uint64

	// LiteralSetChecks counts UseLiteralSet membership checks.
	LiteralSetChecks uint64

	// PrefilterRejects counts inputs the Aho-Corasick prefilter rejected
	// before any equality comparison.
	PrefilterRejects uint64

	// NFARuns counts full NFA simulations.
	NFARuns uint64
}

// Pattern returns the source pattern the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFASize returns the number of NFA states, or 0 when the strategy bypassed
// NFA compilation.
func (e *Engine) NFASize() int {
	if e.nfa == nil {
		return 0
	}
	return e.nfa.States()
}

// IsMatch reports whether the pattern accepts the entire input.
func (e *Engine) IsMatch(input []byte) bool {
	switch e.strategy {
	case UseLiteral:
		atomic.AddUint64(&e.stats.LiteralChecks, 1)
		return e.lits.Contains(input)

	case UseLiteralSet:
		atomic.AddUint64(&e.stats.LiteralSetChecks, 1)
		if e.ahoCorasick != nil && !e.ahoCorasick.IsMatch(input) {
			atomic.AddUint64(&e.stats.PrefilterRejects, 1)
			return false
		}
		return e.lits.Contains(input)

	default:
		atomic.AddUint64(&e.stats.NFARuns, 1)
		sim := e.sims.Get().(*nfa.Simulator)
		matched := sim.Run(input)
		e.sims.Put(sim)
		return matched
	}
}

// IsMatchString reports whether the pattern accepts the entire input string.
func (e *Engine) IsMatchString(input string) bool {
	return e.IsMatch([]byte(input))
}

// Stats returns a snapshot of the engine's activity counters.
func (e *Engine) Stats() Stats {
	return Stats{
		LiteralChecks:    atomic.LoadUint64(&e.stats.LiteralChecks),
		LiteralSetChecks: atomic.LoadUint64(&e.stats.LiteralSetChecks),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		NFARuns:          atomic.LoadUint64(&e.stats.NFARuns),
	}
}

// ResetStats zeroes the engine's activity counters.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.LiteralChecks, 0)
	atomic.StoreUint64(&e.stats.LiteralSetChecks, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.NFARuns, 0)
}
