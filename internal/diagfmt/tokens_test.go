package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/FedericoStra/texfmt/internal/diagfmt"
	"github.com/FedericoStra/texfmt/internal/lexer"
	"github.com/FedericoStra/texfmt/internal/source"
	"github.com/FedericoStra/texfmt/internal/token"
)

func lexInput(t *testing.T, input string) (*source.FileSet, *source.File, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tex", []byte(input)))
	tokens, rest := lexer.Tokenize(file, lexer.Options{})
	if int(rest) != len(input) {
		t.Fatalf("input %q not fully tokenized", input)
	}
	return fs, file, tokens
}

func TestFormatTokensPretty(t *testing.T) {
	fs, _, tokens := lexInput(t, `\alpha x`)

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Command") || !strings.Contains(lines[0], `"alpha"`) {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Whitespace") {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Text") || !strings.Contains(lines[2], "at 1:8-1:9") {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, _, tokens := lexInput(t, "$x$")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}

	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(out))
	}
	if out[0].Kind != "InlineMath" || out[1].Kind != "Text" || out[2].Kind != "InlineMath" {
		t.Errorf("kinds = %s %s %s", out[0].Kind, out[1].Kind, out[2].Kind)
	}
	if out[1].Text != "x" {
		t.Errorf("text = %q, want %q", out[1].Text, "x")
	}
	if out[1].Span.Start != 1 || out[1].Span.End != 2 {
		t.Errorf("span = [%d,%d), want [1,2)", out[1].Span.Start, out[1].Span.End)
	}
}

func TestFormatTokensJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty stream must encode as [], got %q", buf.String())
	}
}

func TestFormatTokensMsgpack_RoundTrip(t *testing.T) {
	_, file, tokens := lexInput(t, `\frac{1}{2}`)

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensMsgpack(&buf, tokens, file); err != nil {
		t.Fatal(err)
	}

	var dump diagfmt.TokenDump
	if err := msgpack.Unmarshal(buf.Bytes(), &dump); err != nil {
		t.Fatalf("output is not valid msgpack: %v", err)
	}
	if dump.Schema != 1 {
		t.Errorf("schema = %d, want 1", dump.Schema)
	}
	if dump.Path != "test.tex" {
		t.Errorf("path = %q", dump.Path)
	}
	if len(dump.Tokens) != len(tokens) {
		t.Fatalf("expected %d tokens, got %d", len(tokens), len(dump.Tokens))
	}
	if dump.Tokens[0].Kind != "Command" || dump.Tokens[0].Text != "frac" {
		t.Errorf("token 0 = %+v", dump.Tokens[0])
	}
	if dump.Tokens[0].Start != 0 || dump.Tokens[0].End != 5 {
		t.Errorf("token 0 span = [%d,%d), want [0,5)", dump.Tokens[0].Start, dump.Tokens[0].End)
	}
}
