package token

import (
	"github.com/FedericoStra/texfmt/internal/source"
)

// Token represents a single source token with its location and payload.
// Text aliases the source buffer; it is never a copy, so the buffer must
// outlive the token.
type Token struct {
	Kind Kind
	Span source.Span
	Text []byte
}

// IsMath reports whether the token is one of the math delimiters.
func (t Token) IsMath() bool {
	switch t.Kind {
	case BDisplayMath, EDisplayMath, TDisplayMath, InlineMath:
		return true
	default:
		return false
	}
}

// IsDelim reports whether the token is a brace or bracket delimiter.
func (t Token) IsDelim() bool {
	switch t.Kind {
	case LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsSpace reports whether the token is horizontal whitespace or a newline.
func (t Token) IsSpace() bool {
	return t.Kind == Whitespace || t.Kind == Newline
}

// Lexeme returns the exact source bytes the token consumed.
// The result shares memory with content.
func (t Token) Lexeme(content []byte) []byte {
	return t.Span.Bytes(content)
}
