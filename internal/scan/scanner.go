package scan

// Variant names a scanner flavor.
type Variant string

const (
	VariantCLike Variant = "clike"
	VariantRuby  Variant = "ruby"
)

// Scanner is a lexical scanner for one syntax family. Scanners hold no
// mutable state and are safe for concurrent use.
type Scanner struct {
	variant    Variant
	dollar     bool // '$' is an identifier rune
	suffix     bool // identifiers may end in '?' or '!'
	templates  bool // backtick literals with ${...} interpolation
	delimiters []rune
}

var (
	// CLike scans JavaScript, TypeScript and their JSX, GraphQL and HTML relatives.
	CLike = &Scanner{
		variant:    VariantCLike,
		dollar:     true,
		templates:  true,
		delimiters: []rune{'"', '\'', '`'},
	}

	// Ruby scans Ruby and ERB.
	Ruby = &Scanner{
		variant:    VariantRuby,
		suffix:     true,
		delimiters: []rune{'"', '\''},
	}
)

var languageVariants = map[string]*Scanner{
	"javascript":      CLike,
	"typescript":      CLike,
	"javascriptreact": CLike,
	"typescriptreact": CLike,
	"graphql":         CLike,
	"html":            CLike,
	"ruby":            Ruby,
	"erb":             Ruby,
}

// ForLanguage returns the scanner for an editor language id. Unknown ids get
// the C-like scanner.
func ForLanguage(languageID string) *Scanner {
	if s, ok := languageVariants[languageID]; ok {
		return s
	}
	return CLike
}

// Variant returns the scanner flavor.
func (s *Scanner) Variant() Variant {
	return s.variant
}

// Scan tokenizes text. Offsets in the result are rune indices into text.
func (s *Scanner) Scan(text string) Result {
	return s.ScanRunes([]rune(text))
}

type state uint8

const (
	stateNormal state = iota
	stateIdentifier
	stateString
	stateInterpolation
)

// ScanRunes tokenizes src.
//
// An unterminated literal produces no string token: the scanner rewinds to
// the rune after the opening delimiter and carries on in the normal state.
func (s *Scanner) ScanRunes(src []rune) Result {
	b := newBuilder()
	n := len(src)

	st := stateNormal
	i := 0
	start := 0 // identifier start or opening delimiter offset
	var quote rune
	depth := 0

	for {
		if i >= n {
			switch st {
			case stateIdentifier:
				s.emitWord(b, src, start, n)
			case stateString, stateInterpolation:
				i = start + 1
				st = stateNormal
				continue
			}
			break
		}

		r := src[i]
		switch st {
		case stateNormal:
			switch {
			case s.isDelimiter(r):
				st = stateString
				start = i
				quote = r
			case s.isIdentRune(r):
				st = stateIdentifier
				start = i
			}
			i++

		case stateIdentifier:
			if s.isIdentRune(r) {
				i++
				continue
			}
			i = s.wordEnd(src, i)
			s.emitWord(b, src, start, i)
			st = stateNormal

		case stateString:
			switch {
			case r == '\\':
				i += 2
			case r == quote:
				b.str(src, start, i)
				s.words(b, src, start+1, i)
				i++
				st = stateNormal
			case s.templates && quote == '`' && r == '$' && i+1 < n && src[i+1] == '{':
				depth = 1
				i += 2
				st = stateInterpolation
			default:
				i++
			}

		case stateInterpolation:
			switch r {
			case '{':
				depth++
			case '}':
				depth--
			}
			i++
			if depth == 0 {
				st = stateString
			}
		}
	}

	return b.res
}

// words emits the identifier occurrences inside src[from:to].
func (s *Scanner) words(b *builder, src []rune, from, to int) {
	i := from
	for i < to {
		if !s.isIdentRune(src[i]) {
			i++
			continue
		}
		start := i
		for i < to && s.isIdentRune(src[i]) {
			i++
		}
		if i < to {
			i = s.wordEnd(src[:to], i)
		}
		s.emitWord(b, src, start, i)
	}
}

// wordEnd extends an identifier run ending at i with a Ruby-style '?' or '!'
// suffix. A suffix followed by '=' is an operator and is left alone.
func (s *Scanner) wordEnd(src []rune, i int) int {
	if !s.suffix || i >= len(src) {
		return i
	}
	if src[i] != '?' && src[i] != '!' {
		return i
	}
	if i+1 < len(src) && src[i+1] == '=' {
		return i
	}
	return i + 1
}

// emitWord records src[start:end] unless it begins with a digit.
func (s *Scanner) emitWord(b *builder, src []rune, start, end int) {
	if isDigit(src[start]) {
		return
	}
	b.identifier(src, start, end)
}

func (s *Scanner) isDelimiter(r rune) bool {
	for _, d := range s.delimiters {
		if r == d {
			return true
		}
	}
	return false
}

func (s *Scanner) isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', isDigit(r), r == '_':
		return true
	case r == '$':
		return s.dollar
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
