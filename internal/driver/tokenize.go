package driver

import (
	"fmt"

	"github.com/FedericoStra/texfmt/internal/diag"
	"github.com/FedericoStra/texfmt/internal/lexer"
	"github.com/FedericoStra/texfmt/internal/source"
	"github.com/FedericoStra/texfmt/internal/token"
)

// TokenizeResult bundles the token stream of one document with the file it
// was scanned from. Rest is the byte offset where scanning stopped; it
// equals the content length when the whole input was consumed.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Rest    uint32
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes scans an in-memory buffer (stdin, tests, generated input).
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, id source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()

	tokens, rest := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Rest:    rest,
		Bag:     bag,
	}
}

// FullyConsumed reports whether the tokenizer matched the entire input.
func (r *TokenizeResult) FullyConsumed() bool {
	return int(r.Rest) == len(r.File.Content)
}

// Remainder returns the unconsumed tail of the input, empty on full success.
func (r *TokenizeResult) Remainder() []byte {
	return r.File.Content[r.Rest:]
}

// Render reassembles the document from the token spans and appends the
// remainder. Token spans tile the consumed prefix, so the result is always
// byte-identical to the input.
func (r *TokenizeResult) Render() []byte {
	out := make([]byte, 0, len(r.File.Content))
	for _, tok := range r.Tokens {
		out = append(out, tok.Lexeme(r.File.Content)...)
	}
	return append(out, r.Remainder()...)
}
