// Package token defines the lexical token kinds of a (La)TeX source.
// Invariants:
//   - Token.Span covers every byte the token consumed, marker characters
//     included ('\' of a command, '%' of a comment).
//   - Token.Text is a sub-slice of the original source (no copies) and holds
//     only the payload: the command name without its backslash, the comment
//     body without its '%', the raw run for Text and Whitespace. Payload-less
//     kinds leave it empty.
//   - Adjacent tokens tile the input: End of token i equals Start of token
//     i+1, so concatenating spans reproduces the consumed prefix exactly.
//   - EOF and Invalid are scanning sentinels; they carry empty spans and
//     never take part in reconstruction.
package token
