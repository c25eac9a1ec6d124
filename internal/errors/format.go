package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// detailWidth is the column at which details are wrapped.
const detailWidth = 70

// style is an ANSI SGR sequence.
type style string

const (
	styleReset style = "\033[0m"
	styleRed   style = "\033[31m"
	styleCyan  style = "\033[36m"
	styleWhite style = "\033[37m"
	styleGray  style = "\033[90m"
	styleBold  style = "\033[1m"
)

var colorEnabled = true

// DisableColors turns off ANSI styling in formatted errors.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI styling back on.
func EnableColors() { colorEnabled = true }

func paint(s style, text string) string {
	if !colorEnabled {
		return text
	}
	return string(s) + text + string(styleReset)
}

func red(text string) string   { return paint(styleRed, text) }
func cyan(text string) string  { return paint(styleCyan, text) }
func white(text string) string { return paint(styleWhite, text) }
func gray(text string) string  { return paint(styleGray, text) }
func bold(text string) string  { return paint(styleBold, text) }

// Format renders the error for a terminal: a header line, the source
// excerpt around the location, the wrapped detail, the cause and the hint.
func (e *MarkupError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	e.writeHeader(&b)

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", cyan(e.Location.String()))
		if len(e.Context) > 0 {
			writeExcerpt(&b, e.Context, e.Location)
		}
	}

	if lines := wrapText(e.Detail, detailWidth); len(lines) > 0 {
		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", gray("Cause: "), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", cyan("Hint: "), e.Suggestion)
	}

	return b.String()
}

func (e *MarkupError) writeHeader(b *strings.Builder) {
	if e.Code == "" {
		b.WriteString(red(bold("ERROR: ")))
	} else {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(e.Code + ": ")))
	}
	b.WriteString(white(e.Message))
	if e.Category != "" {
		b.WriteString(gray(" [" + string(e.Category) + "]"))
	}
	b.WriteString("\n\n")
}

// writeExcerpt prints the context lines with the located line marked and a
// caret under the column.
func writeExcerpt(b *strings.Builder, lines []string, loc *Location) {
	first := max(loc.Line-contextLines/2, 1)
	gutter := gray(" │ ")

	for i, line := range lines {
		n := first + i
		if n != loc.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, gutter, line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", red("→ "), n, gutter, line)
		if loc.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", gray("│ "), strings.Repeat(" ", loc.Column-1), red("^"))
		}
	}
	b.WriteString("\n")
}

// FormatCompact returns the error on one line, prefixed with its location.
func (e *MarkupError) FormatCompact() string {
	if e.Location == nil {
		return e.Error()
	}
	return e.Location.String() + ": " + e.Error()
}

// wrapText breaks text into lines of at most width columns at word
// boundaries. Words longer than width get a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(text)/width+1)
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// Fprint writes err to w, using Format for coded errors.
func Fprint(w io.Writer, err error) {
	var me *MarkupError
	if stderrors.As(err, &me) {
		io.WriteString(w, me.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}
