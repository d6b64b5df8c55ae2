package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a position where no token rule matched.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Command is a control sequence: '\' followed by one or more letters.
	Command // \command
	// Comment is a '%' comment running to the end of the line.
	Comment // % comment
	// Text is a maximal run of ordinary characters, escapes included.
	Text
	// Endline is the literal two-character sequence `\\`.
	Endline // \\

	// BDisplayMath opens display math.
	BDisplayMath // \[
	// EDisplayMath closes display math.
	EDisplayMath // \]
	// TDisplayMath is the TeX display math toggle.
	TDisplayMath // $$
	// InlineMath is the inline math toggle.
	InlineMath // $

	// Whitespace is a maximal run of spaces and tabs.
	Whitespace
	// Newline is one line terminator, '\n' or "\r\n".
	Newline

	// LBrace is '{'.
	LBrace // {
	// RBrace is '}'.
	RBrace // }
	// LBracket is '['.
	LBracket // [
	// RBracket is ']'.
	RBracket // ]
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Command:      "Command",
	Comment:      "Comment",
	Text:         "Text",
	Endline:      "Endline",
	BDisplayMath: "BDisplayMath",
	EDisplayMath: "EDisplayMath",
	TDisplayMath: "TDisplayMath",
	InlineMath:   "InlineMath",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// HasPayload reports whether tokens of this kind carry source text.
func (k Kind) HasPayload() bool {
	switch k {
	case Command, Comment, Text, Whitespace:
		return true
	default:
		return false
	}
}

// Literal returns the fixed spelling of payload-less kinds. Newline has no
// fixed spelling ('\n' or "\r\n"); its bytes come from the span instead.
func (k Kind) Literal() string {
	switch k {
	case Endline:
		return `\\`
	case BDisplayMath:
		return `\[`
	case EDisplayMath:
		return `\]`
	case TDisplayMath:
		return "$$"
	case InlineMath:
		return "$"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	default:
		return ""
	}
}
