package lexer

import (
	"github.com/FedericoStra/texfmt/internal/token"
)

// scanDelimiter scans exactly one of { } [ ].
func (lx *Lexer) scanDelimiter() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch lx.cursor.Bump() {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		lx.cursor.Reset(start)
		return lx.noMatch()
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}
}
