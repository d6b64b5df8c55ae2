package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/FedericoStra/texfmt/internal/source"
	"github.com/FedericoStra/texfmt/internal/token"
)

// TokenOutput is the JSON form of a single token.
type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty writes one human-readable line per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String())
		if len(tok.Text) > 0 {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: string(tok.Text),
			Span: tok.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Current schema version - increment when TokenDump format changes
const tokenDumpSchemaVersion uint16 = 1

// TokenDump is the compact binary form of a token stream, for downstream
// tools that want the spans without re-lexing.
type TokenDump struct {
	Schema uint16          `msgpack:"schema"`
	Path   string          `msgpack:"path"`
	Tokens []TokenDumpItem `msgpack:"tokens"`
}

// TokenDumpItem mirrors one token; Start/End are byte offsets into the file.
type TokenDumpItem struct {
	Kind  string `msgpack:"kind"`
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
	Text  string `msgpack:"text,omitempty"`
}

// FormatTokensMsgpack serializes the token stream with msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, file *source.File) error {
	dump := TokenDump{
		Schema: tokenDumpSchemaVersion,
		Path:   file.Path,
		Tokens: make([]TokenDumpItem, 0, len(tokens)),
	}
	for _, tok := range tokens {
		dump.Tokens = append(dump.Tokens, TokenDumpItem{
			Kind:  tok.Kind.String(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  string(tok.Text),
		})
	}

	enc := msgpack.NewEncoder(w)
	return enc.Encode(dump)
}
