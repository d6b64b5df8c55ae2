package lexer

import (
	"github.com/FedericoStra/texfmt/internal/token"
)

// scanBackslash resolves everything a '\' can begin, in rule-priority order:
// a command (letters follow), the \\ endline, the \[ and \] display-math
// delimiters, or a text run opened by an escape like `\,`. A backslash
// followed by anything else matches no rule at all.
func (lx *Lexer) scanBackslash() token.Token {
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		// lone '\' at end of input
		return lx.noMatch()
	}

	switch {
	case isAlpha(b1):
		return lx.scanCommand()

	case b1 == '\\':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return token.Token{Kind: token.Endline, Span: lx.cursor.SpanFrom(start)}

	case b1 == '[':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return token.Token{Kind: token.BDisplayMath, Span: lx.cursor.SpanFrom(start)}

	case b1 == ']':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return token.Token{Kind: token.EDisplayMath, Span: lx.cursor.SpanFrom(start)}

	case isEscapable(b1):
		return lx.scanText()

	default:
		return lx.noMatch()
	}
}

// scanCommand scans '\' plus one or more letters. The span covers the
// backslash; the payload does not.
func (lx *Lexer) scanCommand() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	for isAlpha(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Command,
		Span: sp,
		Text: lx.file.Content[sp.Start+1 : sp.End],
	}
}
