package nfa

import (
	"github.com/coregx/rematch/parser"
)

// Compiler translates a parsed token tree into a Thompson NFA. Every token
// compiles to a fragment with exactly one entry and one exit state; fragments
// are stitched together with epsilon edges.
//
// The compiler is total on well-formed token trees: the only error path is
// builder validation, which guards against construction bugs.
type Compiler struct {
	builder *Builder
}

// NewCompiler creates a new compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile compiles a top-level token sequence (the AST root) into an NFA.
// The outermost fragment's endpoints become the start and terminal states.
func (c *Compiler) Compile(ast []parser.Token) (*NFA, error) {
	c.builder = NewBuilderWithCapacity(2 + 2*len(ast))
	start, end := c.compileSeq(ast)
	c.builder.SetEndpoints(start, end)
	return c.builder.Build()
}

// Compile is a convenience wrapper around a one-shot Compiler.
func Compile(ast []parser.Token) (*NFA, error) {
	return NewCompiler().Compile(ast)
}

// fragment is a compiled sub-automaton with single entry and exit states.
type fragment struct {
	start, end StateID
}

// compileSeq compiles a token sequence as a concatenation: each fragment's
// exit is epsilon-linked to the next fragment's entry. An empty sequence
// compiles to a fragment accepting only the empty string.
func (c *Compiler) compileSeq(seq []parser.Token) (start, end StateID) {
	if len(seq) == 0 {
		s := c.builder.AddState()
		e := c.builder.AddState()
		c.builder.AddEpsilon(s, e)
		return s, e
	}

	first := c.compileToken(&seq[0])
	prev := first
	for i := 1; i < len(seq); i++ {
		next := c.compileToken(&seq[i])
		c.builder.AddEpsilon(prev.end, next.start)
		prev = next
	}
	return first.start, prev.end
}

// compileToken compiles a single token into a fresh fragment.
func (c *Compiler) compileToken(t *parser.Token) fragment {
	switch t.Kind() {
	case parser.KindLiteral:
		s := c.builder.AddState()
		e := c.builder.AddState()
		c.builder.AddTransition(s, t.Literal(), e)
		return fragment{s, e}

	case parser.KindBracket:
		s := c.builder.AddState()
		e := c.builder.AddState()
		for _, b := range t.Set() {
			c.builder.AddTransition(s, b, e)
		}
		return fragment{s, e}

	case parser.KindGroup:
		s := c.builder.AddState()
		e := c.builder.AddState()
		seq := t.Seq()
		if len(seq) == 0 {
			c.builder.AddEpsilon(s, e)
			return fragment{s, e}
		}
		is, ie := c.compileSeq(seq)
		c.builder.AddEpsilon(s, is)
		c.builder.AddEpsilon(ie, e)
		return fragment{s, e}

	case parser.KindOr:
		s := c.builder.AddState()
		e := c.builder.AddState()
		left, right := t.Alternatives()
		ls, le := c.compileSeq(left)
		rs, re := c.compileSeq(right)
		c.builder.AddEpsilon(s, ls)
		c.builder.AddEpsilon(s, rs)
		c.builder.AddEpsilon(le, e)
		c.builder.AddEpsilon(re, e)
		return fragment{s, e}

	case parser.KindRepeat:
		return c.compileRepeat(t)

	default:
		// Unreachable for parser-produced trees.
		s := c.builder.AddState()
		e := c.builder.AddState()
		c.builder.AddEpsilon(s, e)
		return fragment{s, e}
	}
}

// compileRepeat expands a quantified token. Every occurrence of the inner
// token gets a freshly compiled fragment: sharing one fragment across
// occurrences would let later copies loop back into earlier ones and corrupt
// the language.
func (c *Compiler) compileRepeat(t *parser.Token) fragment {
	min, max, inner := t.Repeat()
	s := c.builder.AddState()
	e := c.builder.AddState()

	switch {
	case min == 0 && max == 0:
		c.builder.AddEpsilon(s, e)

	case min == 0 && max == parser.Unbounded:
		// Kleene star.
		in := c.compileToken(inner)
		c.builder.AddEpsilon(s, in.start)
		c.builder.AddEpsilon(s, e)
		c.builder.AddEpsilon(in.end, in.start)
		c.builder.AddEpsilon(in.end, e)

	case min == 1 && max == parser.Unbounded:
		// One or more.
		in := c.compileToken(inner)
		c.builder.AddEpsilon(s, in.start)
		c.builder.AddEpsilon(in.end, in.start)
		c.builder.AddEpsilon(in.end, e)

	case min == 0 && max == 1:
		// Optional.
		in := c.compileToken(inner)
		c.builder.AddEpsilon(s, in.start)
		c.builder.AddEpsilon(s, e)
		c.builder.AddEpsilon(in.end, e)

	default:
		c.compileRepeatChain(s, e, min, max, inner)
	}

	return fragment{s, e}
}

// compileRepeatChain handles the general {m}, {m,}, {m,n} forms: min
// mandatory copies in series, then either a trailing loop (unbounded) or a
// ladder of optional copies, each with a bypass to a fresh cursor state.
func (c *Compiler) compileRepeatChain(s, e StateID, min, max uint32, inner *parser.Token) {
	cursor := s
	for i := uint32(0); i < min; i++ {
		in := c.compileToken(inner)
		c.builder.AddEpsilon(cursor, in.start)
		cursor = in.end
	}

	if max == parser.Unbounded {
		in := c.compileToken(inner)
		c.builder.AddEpsilon(cursor, in.start)
		c.builder.AddEpsilon(in.end, in.start)
		c.builder.AddEpsilon(in.end, e)
		c.builder.AddEpsilon(cursor, e)
		return
	}

	for i := min; i < max; i++ {
		in := c.compileToken(inner)
		c.builder.AddEpsilon(cursor, in.start)
		next := c.builder.AddState()
		c.builder.AddEpsilon(cursor, next)
		c.builder.AddEpsilon(in.end, next)
		cursor = next
	}
	c.builder.AddEpsilon(cursor, e)
}
