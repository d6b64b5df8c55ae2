package lexer

import (
	"github.com/FedericoStra/texfmt/internal/diag"
	"github.com/FedericoStra/texfmt/internal/source"
	"github.com/FedericoStra/texfmt/internal/token"
)

// Lexer scans a (La)TeX source file left to right, one token per call.
// It keeps no state beyond the cursor position, performs no I/O, and never
// touches anything process-wide, so independent lexers may run in parallel.
//
// Token rules are tried in a fixed priority order: Command, Comment,
// Endline, math delimiters (\[ \] $$ $), Whitespace, Newline, brace and
// bracket delimiters, Text. The order is part of the contract: `$$` must
// win over `$`, and `\\` must be claimed before the Text rule could see the
// second backslash as an escape marker. Next dispatches on the first byte,
// which decides the same winner in O(1) because no two rules with different
// first bytes can both match.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. At end of input it returns EOF; when no rule
// matches it reports a diagnostic and returns Invalid without advancing, so
// the failing offset is the start of the unconsumed remainder.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	switch b := lx.cursor.Peek(); {
	case b == '\\':
		return lx.scanBackslash()

	case b == '%':
		return lx.scanComment()

	case b == '$':
		return lx.scanDollar()

	case b == ' ' || b == '\t':
		return lx.scanWhitespace()

	case b == '\n' || b == '\r':
		return lx.scanNewlineOrText()

	case b == '{' || b == '}' || b == '[' || b == ']':
		return lx.scanDelimiter()

	default:
		return lx.scanText()
	}
}

// Tokenize scans the file from the beginning and returns all matched tokens
// plus the byte offset of the unconsumed remainder. rest equals
// len(file.Content) exactly when the whole input was consumed.
func Tokenize(file *source.File, opts Options) (tokens []token.Token, rest uint32) {
	lx := New(file, opts)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return tokens, lx.cursor.Off
		}
		tokens = append(tokens, tok)
	}
}

// noMatch reports the single lexical error condition, "no rule matched at
// this offset", and leaves the cursor in place.
func (lx *Lexer) noMatch() token.Token {
	off := lx.cursor.Off
	end := off
	if !lx.cursor.EOF() {
		end = off + 1
	}
	sp := source.Span{File: lx.file.ID, Start: off, End: end}
	lx.errLex(diag.LexNoMatch, sp, "no token rule matched")
	return token.Token{Kind: token.Invalid, Span: sp}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
