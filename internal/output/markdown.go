package output

import (
	"io"
	"strings"

	"github.com/dshills/codecloak/internal/keywords"
)

// MarkdownWriter outputs the "Default keywords" reference document.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, lang string, groups []keywords.Group) error {
	ew := &errWriter{w: w}

	ew.printf("# CodeCloak - Default keywords: %s\n\n", keywords.Label(lang))
	ew.println("To add keywords, use `codeCloak.keywordsAdd` in settings.")
	ew.println("To remove keywords from defaults, use `codeCloak.keywordsExclude`.")
	ew.println("")
	ew.println("---")
	ew.println("")

	for _, g := range groups {
		ew.printf("## %s\n\n", g.Category)
		ew.printf("%s\n\n", strings.Join(g.Keywords, ", "))
	}

	return ew.err
}
