package redact

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

// ErrPathRedacted is returned by Guard for files the path policy excludes.
var ErrPathRedacted = errors.New("file excluded by redaction path policy")

type pattern struct {
	kind string
	re   *regexp.Regexp
}

// secretPatterns are regex heuristics for common secret types. Order
// matters: more specific shapes run first.
var secretPatterns = []pattern{
	{"api key", regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`)},
	{"aws access key id", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws secret access key", regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`)},
	{"assigned secret", regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`)},
	{"bearer token", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"private key", regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`)},
	{"connection string", regexp.MustCompile(`(?i)\b(postgres(ql)?|mysql|mongodb(\+srv)?|redis|amqps?)://[^\s:/@]+:[^\s@]+@`)},
	{"github token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"slack token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"anthropic key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"openai key", regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
	{"hex secret", regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Secrets replaces detected secrets in text with [REDACTED] and returns the
// number of replacements made.
func Secrets(text string) (string, int) {
	n := 0
	result := text
	for _, p := range secretPatterns {
		result = p.re.ReplaceAllStringFunc(result, func(string) string {
			n++
			return placeholder
		})
	}
	return result, n
}

// Kinds returns the kinds of secret detected in text, in pattern order.
func Kinds(text string) []string {
	var kinds []string
	for _, p := range secretPatterns {
		if p.re.MatchString(text) {
			kinds = append(kinds, p.kind)
		}
	}
	return kinds
}

// ShouldRedactPath checks if a file path matches any of the redaction path patterns.
func ShouldRedactPath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, path)
		if err == nil && matched {
			return true
		}
		// "**/.env" also matches on the base name alone.
		cleanPattern := strings.TrimPrefix(pattern, "**/")
		if cleanPattern != pattern {
			base := filepath.Base(path)
			matched, err = filepath.Match(cleanPattern, base)
			if err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Guard refuses paths matching the redaction patterns. An empty path (stdin)
// always passes.
func Guard(path string, patterns []string) error {
	if path == "" || path == "-" {
		return nil
	}
	if ShouldRedactPath(path, patterns) {
		return fmt.Errorf("%s: %w", path, ErrPathRedacted)
	}
	return nil
}
