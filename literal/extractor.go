package literal

import (
	"github.com/coregx/rematch/parser"
)

// maxLiteralLen caps the length of any single extracted literal.
const maxLiteralLen = 64

// Extract enumerates the exact set of strings accepted by the token tree.
// It returns nil when the language is not a small finite set: any quantifier,
// or a class/alternation cross product expanding past maxLiterals, aborts
// extraction.
//
// A non-nil result is exact and complete — equality against it fully decides
// acceptance, with no NFA verification step.
func Extract(ast []parser.Token, maxLiterals int) *Seq {
	x := &extractor{max: maxLiterals}
	lits, ok := x.seq(ast)
	if !ok {
		return nil
	}
	seq := NewSeq()
	for _, lit := range lits {
		seq.Add(lit)
	}
	return seq
}

type extractor struct {
	max int
}

// seq expands a concatenation: the result is the cross product of the
// alternative sets of its tokens.
func (x *extractor) seq(seq []parser.Token) ([][]byte, bool) {
	acc := [][]byte{nil}
	for i := range seq {
		alts, ok := x.token(&seq[i])
		if !ok {
			return nil, false
		}
		if len(acc)*len(alts) > x.max {
			return nil, false
		}
		product := make([][]byte, 0, len(acc)*len(alts))
		for _, prefix := range acc {
			for _, alt := range alts {
				if len(prefix)+len(alt) > maxLiteralLen {
					return nil, false
				}
				lit := make([]byte, 0, len(prefix)+len(alt))
				lit = append(lit, prefix...)
				lit = append(lit, alt...)
				product = append(product, lit)
			}
		}
		acc = product
	}
	return acc, true
}

// token expands one token into its set of accepted strings.
func (x *extractor) token(t *parser.Token) ([][]byte, bool) {
	switch t.Kind() {
	case parser.KindLiteral:
		return [][]byte{{t.Literal()}}, true

	case parser.KindBracket:
		set := t.Set()
		if len(set) > x.max {
			return nil, false
		}
		alts := make([][]byte, len(set))
		for i, b := range set {
			alts[i] = []byte{b}
		}
		return alts, true

	case parser.KindGroup:
		return x.seq(t.Seq())

	case parser.KindOr:
		left, right := t.Alternatives()
		lalts, ok := x.seq(left)
		if !ok {
			return nil, false
		}
		ralts, ok := x.seq(right)
		if !ok {
			return nil, false
		}
		if len(lalts)+len(ralts) > x.max {
			return nil, false
		}
		return append(lalts, ralts...), true

	default:
		// Repeat: never enumerated, even when its language is small and
		// finite (a?, a{2}).
		return nil, false
	}
}
