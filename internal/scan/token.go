package scan

// Kind identifies the type of a token.
type Kind uint8

const (
	KindIdentifier Kind = iota + 1
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Token is one identifier or string literal occurrence.
// Start and End are rune offsets into the scanned text, End exclusive. For a
// string token the span covers both delimiters while Value holds only the
// content between them.
type Token struct {
	Kind  Kind
	Value string
	Start int
	End   int
	Quote rune // opening delimiter, zero for identifiers
}

// Contains reports whether t's span lies fully inside o's span.
func (t Token) Contains(o Token) bool {
	return o.Start >= t.Start && o.End <= t.End
}

// Result is the output of a scan.
type Result struct {
	Identifiers []string // distinct identifier names, first-seen order
	Strings     []string // distinct string contents, first-seen order
	Tokens      []Token  // every occurrence, ordered by Start
}

// StringTokens returns the string tokens of r in order.
func (r Result) StringTokens() []Token {
	var out []Token
	for _, tok := range r.Tokens {
		if tok.Kind == KindString {
			out = append(out, tok)
		}
	}
	return out
}

type builder struct {
	res      Result
	seenIDs  map[string]bool
	seenStrs map[string]bool
}

func newBuilder() *builder {
	return &builder{
		seenIDs:  make(map[string]bool),
		seenStrs: make(map[string]bool),
	}
}

func (b *builder) identifier(src []rune, start, end int) {
	value := string(src[start:end])
	b.res.Tokens = append(b.res.Tokens, Token{Kind: KindIdentifier, Value: value, Start: start, End: end})
	if !b.seenIDs[value] {
		b.seenIDs[value] = true
		b.res.Identifiers = append(b.res.Identifiers, value)
	}
}

func (b *builder) str(src []rune, open, close int) {
	value := string(src[open+1 : close])
	b.res.Tokens = append(b.res.Tokens, Token{
		Kind:  KindString,
		Value: value,
		Start: open,
		End:   close + 1,
		Quote: src[open],
	})
	if !b.seenStrs[value] {
		b.seenStrs[value] = true
		b.res.Strings = append(b.res.Strings, value)
	}
}
