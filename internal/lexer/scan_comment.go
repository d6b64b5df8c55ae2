package lexer

import (
	"github.com/FedericoStra/texfmt/internal/token"
)

// scanComment scans '%' and everything up to, but not including, the next
// line terminator ('\n' or "\r\n") or end of input. A lone '\r' is not a
// terminator and stays inside the payload. The span covers the '%'; the
// payload does not.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '%'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\r' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				break
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Comment,
		Span: sp,
		Text: lx.file.Content[sp.Start+1 : sp.End],
	}
}
