package lexer

import (
	"github.com/FedericoStra/texfmt/internal/token"
)

// scanText scans a maximal run where every element is either an ordinary
// byte (anything outside the structural set; brackets and lone '\r'
// included) or a two-byte escape '\'+c with c from the escapable set, kept
// verbatim. The run ends at the first structural byte or at a backslash
// that does not open an escape; whatever follows is retried against the
// full rule list by the driver.
func (lx *Lexer) scanText() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && isEscapable(b1) {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			break
		}
		if isStructural(b) {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		return lx.noMatch()
	}
	return token.Token{
		Kind: token.Text,
		Span: sp,
		Text: lx.file.Content[sp.Start:sp.End],
	}
}
