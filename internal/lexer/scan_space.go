package lexer

import (
	"github.com/FedericoStra/texfmt/internal/token"
)

// scanWhitespace scans a maximal run of spaces and tabs. Line terminators
// are a separate token kind and never merge into the run.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Whitespace,
		Span: sp,
		Text: lx.file.Content[sp.Start:sp.End],
	}
}

// scanNewlineOrText consumes one line terminator, '\n' or "\r\n", as a
// single Newline regardless of width. A '\r' not followed by '\n' is an
// ordinary text byte.
func (lx *Lexer) scanNewlineOrText() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Eat('\n') {
		return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start)}
	}
	if lx.try2('\r', '\n') {
		return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start)}
	}
	return lx.scanText()
}
