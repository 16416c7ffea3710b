package parser

import (
	"fmt"
	"strings"
)

// Unbounded is the upper repetition bound for quantifiers without a maximum
// (*, +, {m,}). It compares greater than every finite bound.
const Unbounded uint32 = 0xFFFFFFFF

// TokenKind identifies the variant of a Token.
type TokenKind uint8

const (
	// KindLiteral matches a single byte.
	KindLiteral TokenKind = iota

	// KindBracket matches any byte in an enumerated set ([...] classes,
	// with ranges already expanded).
	KindBracket

	// KindGroup is a parenthesized sub-sequence. Groups exist purely for
	// precedence and quantification; an empty group matches the empty string.
	KindGroup

	// KindOr is an alternation of two non-empty sub-sequences.
	KindOr

	// KindRepeat quantifies exactly one inner token with bounds [min, max].
	KindRepeat
)

// String returns a human-readable representation of the TokenKind.
func (k TokenKind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindBracket:
		return "Bracket"
	case KindGroup:
		return "Group"
	case KindOr:
		return "Or"
	case KindRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Token is one node of the pattern AST. It is a tagged variant: the kind
// determines which payload fields are valid. Tokens are immutable once
// produced by the parser.
type Token struct {
	kind TokenKind

	// For Literal: the byte to match.
	ch byte

	// For Bracket: the expanded byte set, deduplicated, in first-seen order.
	set []byte

	// For Group: the grouped sub-sequence (may be empty).
	seq []Token

	// For Or: the two alternatives, both non-empty.
	left, right []Token

	// For Repeat: bounds and the quantified token.
	// max is Unbounded for *, + and {m,}.
	min, max uint32
	inner    *Token
}

// Kind returns the token's variant.
func (t *Token) Kind() TokenKind {
	return t.kind
}

// Literal returns the byte for Literal tokens.
// Returns 0 for other kinds.
func (t *Token) Literal() byte {
	if t.kind == KindLiteral {
		return t.ch
	}
	return 0
}

// Set returns the byte set for Bracket tokens.
// Returns nil for other kinds.
func (t *Token) Set() []byte {
	if t.kind == KindBracket {
		return t.set
	}
	return nil
}

// Seq returns the grouped sub-sequence for Group tokens.
// Returns nil for other kinds.
func (t *Token) Seq() []Token {
	if t.kind == KindGroup {
		return t.seq
	}
	return nil
}

// Alternatives returns the two operand sequences for Or tokens.
// Returns (nil, nil) for other kinds.
func (t *Token) Alternatives() (left, right []Token) {
	if t.kind == KindOr {
		return t.left, t.right
	}
	return nil, nil
}

// Repeat returns the bounds and inner token for Repeat tokens.
// Returns (0, 0, nil) for other kinds.
func (t *Token) Repeat() (min, max uint32, inner *Token) {
	if t.kind == KindRepeat {
		return t.min, t.max, t.inner
	}
	return 0, 0, nil
}

// String returns a human-readable representation of the token.
func (t *Token) String() string {
	switch t.kind {
	case KindLiteral:
		return fmt.Sprintf("Literal(%q)", t.ch)
	case KindBracket:
		return fmt.Sprintf("Bracket(%q)", t.set)
	case KindGroup:
		return fmt.Sprintf("Group(%s)", seqString(t.seq))
	case KindOr:
		return fmt.Sprintf("Or(%s | %s)", seqString(t.left), seqString(t.right))
	case KindRepeat:
		if t.max == Unbounded {
			return fmt.Sprintf("Repeat{%d,}(%s)", t.min, t.inner)
		}
		return fmt.Sprintf("Repeat{%d,%d}(%s)", t.min, t.max, t.inner)
	default:
		return "Unknown"
	}
}

func seqString(seq []Token) string {
	parts := make([]string, len(seq))
	for i := range seq {
		parts[i] = seq[i].String()
	}
	return strings.Join(parts, " ")
}

func newLiteral(c byte) Token {
	return Token{kind: KindLiteral, ch: c}
}

func newBracket(set []byte) Token {
	return Token{kind: KindBracket, set: set}
}

func newGroup(seq []Token) Token {
	return Token{kind: KindGroup, seq: seq}
}

func newOr(left, right []Token) Token {
	return Token{kind: KindOr, left: left, right: right}
}

func newRepeat(min, max uint32, inner Token) Token {
	return Token{kind: KindRepeat, min: min, max: max, inner: &inner}
}
