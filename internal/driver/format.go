package driver

// FormatResult carries the rewritten document alongside its tokenization.
type FormatResult struct {
	*TokenizeResult
	Output []byte
}

// Format rewrites a (La)TeX document read from disk. The current formatter
// is the identity: it re-emits the token stream byte-for-byte, remainder
// included. Structural rewriting will build on the same token sequence.
func Format(path string, maxDiagnostics int) (*FormatResult, error) {
	res, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &FormatResult{TokenizeResult: res, Output: res.Render()}, nil
}

// FormatBytes rewrites an in-memory document (stdin).
func FormatBytes(name string, content []byte, maxDiagnostics int) *FormatResult {
	res := TokenizeBytes(name, content, maxDiagnostics)
	return &FormatResult{TokenizeResult: res, Output: res.Render()}
}
