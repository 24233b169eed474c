package strmask

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Format selects how string contents are masked.
type Format string

const (
	// PlaceholderShort replaces contents with s1, s2, ...
	PlaceholderShort Format = "placeholder-short"
	// PlaceholderLong replaces contents with str1, str2, ...
	PlaceholderLong Format = "placeholder-long"
	// Abbreviate keeps the first two characters of every word and number.
	Abbreviate Format = "abbreviate"
)

// Formats lists the accepted formats.
var Formats = []Format{PlaceholderShort, PlaceholderLong, Abbreviate}

// ParseFormat resolves a format name. The empty string selects
// PlaceholderShort, and the short forms "s1" and "str1" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PlaceholderShort), "s1":
		return PlaceholderShort, nil
	case string(PlaceholderLong), "str1":
		return PlaceholderLong, nil
	case string(Abbreviate):
		return Abbreviate, nil
	default:
		return "", fmt.Errorf("unknown string format %q (want placeholder-short, placeholder-long or abbreviate)", s)
	}
}

func (f Format) prefix() string {
	if f == PlaceholderLong {
		return "str"
	}
	return "s"
}

// letters are the runes that form words: ASCII letters and the Latin-1
// Supplement through Latin Extended-B block.
var letters = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
	}},
	&unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x00C0, Hi: 0x024F, Stride: 1},
	}},
)

func isLetter(r rune) bool { return unicode.Is(letters, r) }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }

// AbbreviateText cuts every maximal run of letters, and every maximal run of
// digits, to its first two characters. Other characters pass through.
//
//	"Isso é uma string" -> "Is é um st"
//	"/opt/teste/teste2" -> "/op/te/te2"
func AbbreviateText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runLen := 0
	var runClass func(rune) bool
	for _, r := range s {
		var class func(rune) bool
		switch {
		case isLetter(r):
			class = isLetter
		case isDigit(r):
			class = isDigit
		}

		if class == nil {
			runLen = 0
			runClass = nil
			b.WriteRune(r)
			continue
		}
		if runClass == nil || !runClass(r) {
			runLen = 0
			runClass = class
		}
		runLen++
		if runLen <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Build maps every distinct content to its replacement, in first-seen order.
//
// Placeholders are numbered sequentially. In Abbreviate mode a replacement
// that equals another content's replacement, or a content that abbreviates
// to itself and so stays verbatim, gets a numeric suffix to keep every
// replacement reversible.
func Build(contents []string, format Format) *Mapping {
	m := NewMapping()
	if format == Abbreviate {
		buildAbbreviated(m, contents)
		return m
	}

	prefix := format.prefix()
	n := 1
	for _, s := range contents {
		if _, ok := m.Get(s); ok {
			continue
		}
		m.Set(s, prefix+strconv.Itoa(n))
		n++
	}
	return m
}

func buildAbbreviated(m *Mapping, contents []string) {
	verbatim := make(map[string]bool)
	for _, s := range contents {
		if AbbreviateText(s) == s {
			verbatim[s] = true
		}
	}

	taken := make(map[string]bool)
	for _, s := range contents {
		if _, ok := m.Get(s); ok {
			continue
		}
		if verbatim[s] {
			m.Set(s, s)
			continue
		}
		short := AbbreviateText(s)
		candidate := short
		for n := 2; verbatim[candidate] || taken[candidate]; n++ {
			candidate = short + strconv.Itoa(n)
		}
		taken[candidate] = true
		m.Set(s, candidate)
	}
}
