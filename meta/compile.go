package meta

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rematch/literal"
	"github.com/coregx/rematch/nfa"
	"github.com/coregx/rematch/parser"
)

// CompileError wraps failures from the compilation pipeline with the pattern
// that caused them.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles a pattern string into an executable Engine.
//
// Steps:
//  1. Parse the pattern into a token tree
//  2. Try exact literal extraction
//  3. Select a strategy from the extraction result
//  4. Build the backend the strategy needs (literal set, Aho-Corasick
//     automaton, or Thompson NFA)
//
// Returns a *CompileError wrapping a *parser.ParseError when the pattern is
// invalid.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, err := parser.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var lits *literal.Seq
	if config.EnableLiteralOpt {
		lits = literal.Extract(ast, config.MaxLiterals)
	}

	e := &Engine{
		pattern:  pattern,
		strategy: selectStrategy(lits),
		lits:     lits,
	}

	switch e.strategy {
	case UseLiteral:
		return e, nil

	case UseLiteralSet:
		e.ahoCorasick = buildPrefilter(lits)
		return e, nil

	default:
		automaton, err := nfa.Compile(ast)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		e.nfa = automaton
		e.sims.New = func() any {
			return nfa.NewSimulator(automaton)
		}
		return e, nil
	}
}

// buildPrefilter builds the Aho-Corasick automaton over the literal set.
// Returns nil when the set contains the empty string (every input would pass
// the filter) or when the build fails; membership alone still decides
// acceptance in both cases.
func buildPrefilter(lits *literal.Seq) *ahocorasick.Automaton {
	if lits.MinLen() == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < lits.Len(); i++ {
		builder.AddPattern(lits.Get(i))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return automaton
}
