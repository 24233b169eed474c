package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/codecloak/internal/keywords"
)

// TextWriter outputs a human-readable listing for the terminal.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, lang string, groups []keywords.Group) error {
	ew := &errWriter{w: w}

	ew.printf("Default keywords: %s (%d names)\n", keywords.Label(lang), keywords.Count(groups))
	ew.println(strings.Repeat("─", 60))

	for _, g := range groups {
		ew.printf("\n%s (%d)\n", g.Category, len(g.Keywords))
		ew.println(strings.Repeat("─", 40))
		for _, line := range wrapText(strings.Join(g.Keywords, ", "), 70) {
			ew.printf("  %s\n", line)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
