package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/FedericoStra/texfmt/internal/diag"
	"github.com/FedericoStra/texfmt/internal/source"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan, color.Bold)
	gutterStyle  = color.New(color.FgBlue)
	caretStyle   = color.New(color.FgRed, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorLabel
	case diag.SevWarning:
		return warningLabel
	default:
		return infoLabel
	}
}

// Pretty renders diagnostics in a human-readable format, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	   12 | offending source line
//	      |          ^~~~
//
// Call bag.Sort() beforehand for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	label := fmt.Sprintf("%s [%s]", d.Severity, d.Code.ID())
	if opts.Color {
		label = severityColor(d.Severity).Sprint(label)
	}

	// I/O diagnostics carry no source location; render a bare header.
	if d.Primary.File == source.NoFile || int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(w, "%s: %s\n", label, d.Message)
		return
	}

	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := f.FormatPath(opts.PathMode.mode(), fs.BaseDir())

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, d.Message)

	if opts.ShowPreview {
		writePreview(w, f, start, end, opts)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func writePreview(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx

	for lineNum := first; lineNum <= last; lineNum++ {
		line := f.GetLine(lineNum)
		if line == "" && lineNum > start.Line {
			break
		}
		gutter := fmt.Sprintf("%5d |", lineNum)
		if opts.Color {
			gutter = gutterStyle.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s %s\n", gutter, line)

		if lineNum == start.Line {
			writeCaret(w, line, start, end, opts)
		}
	}
}

// writeCaret underlines the primary span within its first line. Columns are
// byte offsets into the line; runewidth converts the prefix to display cells
// so the caret lands under multi-byte and wide characters too.
func writeCaret(w io.Writer, line string, start, end source.LineCol, opts PrettyOpts) {
	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	prefixEnd := col - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixEnd])

	underEnd := len(line)
	if end.Line == start.Line && int(end.Col)-1 < underEnd {
		underEnd = int(end.Col) - 1
	}
	if underEnd < prefixEnd {
		underEnd = prefixEnd
	}
	width := runewidth.StringWidth(line[prefixEnd:underEnd])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = caretStyle.Sprint(marker)
	}
	gutter := "      |"
	if opts.Color {
		gutter = gutterStyle.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s %s%s\n", gutter, strings.Repeat(" ", pad), marker)
}
