package lexer

// Command names are ASCII letters only; '\' followed by anything else is
// never a command.
func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isEscapable reports whether '\'+b is a literal escape inside a text run.
// The set matches what TeX documents conventionally escape in running text.
func isEscapable(b byte) bool {
	switch b {
	case '%', '{', '}', '$', '&', ',', ';', '!', ' ':
		return true
	default:
		return false
	}
}

// isStructural reports whether b terminates a text run when unescaped.
// Brackets are deliberately absent: '[' and ']' start delimiter tokens but
// are ordinary bytes in the middle of a run.
func isStructural(b byte) bool {
	switch b {
	case '\\', '%', '{', '}', '$', ' ', '\t', '\n':
		return true
	default:
		return false
	}
}

// try2 consumes two bytes if they match exactly.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
