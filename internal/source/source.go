package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// Stdio is the location that selects standard input or output.
const Stdio = "-"

var fs = afs.New()

// Read returns the text at location. Empty or "-" reads stdin; anything
// with a scheme (file://, s3://, gs://, mem://, ...) goes through afs; any
// other value is a local path.
func Read(ctx context.Context, location string, stdin io.Reader) (string, error) {
	if location == "" || location == Stdio {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	url, err := normalize(location)
	if err != nil {
		return "", err
	}
	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", location, err)
	}
	return string(data), nil
}

// Write stores text at location. Empty or "-" writes to stdout.
func Write(ctx context.Context, location, text string, stdout io.Writer) error {
	if location == "" || location == Stdio {
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}
	url, err := normalize(location)
	if err != nil {
		return err
	}
	if err := fs.Upload(ctx, url, 0o644, strings.NewReader(text)); err != nil {
		return fmt.Errorf("writing %s: %w", location, err)
	}
	return nil
}

// IsURL reports whether location carries a scheme.
func IsURL(location string) bool {
	return strings.Contains(location, "://")
}

// normalize turns a relative local path into an absolute one.
func normalize(location string) (string, error) {
	if IsURL(location) {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", location, err)
	}
	return abs, nil
}

// Extension to language id.
var languages = map[string]string{
	".js":      "javascript",
	".mjs":     "javascript",
	".cjs":     "javascript",
	".jsx":     "javascriptreact",
	".ts":      "typescript",
	".mts":     "typescript",
	".cts":     "typescript",
	".tsx":     "typescriptreact",
	".rb":      "ruby",
	".rake":    "ruby",
	".gemspec": "ruby",
	".ru":      "ruby",
	".erb":     "erb",
	".graphql": "graphql",
	".gql":     "graphql",
	".html":    "html",
	".htm":     "html",
}

var rubyFiles = map[string]bool{
	"Gemfile":   true,
	"Rakefile":  true,
	"Guardfile": true,
}

// LanguageFromPath guesses the language id of a file or URL from its name.
// It returns "" when the name says nothing.
func LanguageFromPath(location string) string {
	if location == "" || location == Stdio {
		return ""
	}
	var name string
	if IsURL(location) {
		name = path.Base(strings.SplitN(location, "?", 2)[0])
	} else {
		name = filepath.Base(location)
	}
	if rubyFiles[name] {
		return "ruby"
	}
	return languages[strings.ToLower(filepath.Ext(name))]
}
