package lexer

import (
	"github.com/FedericoStra/texfmt/internal/token"
)

// scanDollar distinguishes the display-math toggle from inline math.
// $$ must be tried first or it would split into two InlineMath tokens.
func (lx *Lexer) scanDollar() token.Token {
	start := lx.cursor.Mark()
	if lx.try2('$', '$') {
		return token.Token{Kind: token.TDisplayMath, Span: lx.cursor.SpanFrom(start)}
	}
	lx.cursor.Bump()
	return token.Token{Kind: token.InlineMath, Span: lx.cursor.SpanFrom(start)}
}
