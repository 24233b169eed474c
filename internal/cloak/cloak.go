package cloak

import (
	"github.com/dshills/codecloak/internal/abbrev"
	"github.com/dshills/codecloak/internal/keywords"
	"github.com/dshills/codecloak/internal/scan"
	"github.com/dshills/codecloak/internal/strmask"
)

// Options controls one cloak operation.
type Options struct {
	// LanguageID selects the scanner and the default reserved names.
	LanguageID string
	// StringFormat defaults to strmask.PlaceholderShort when empty.
	StringFormat strmask.Format
	Keywords     keywords.Config
}

// Context is the reverse mapping produced by a cloak. It is the only state
// carried from cloak to decloak and holds plain string maps so it survives
// any structured serializer.
type Context struct {
	IdentifierMap map[string]string `json:"identifierMap" yaml:"identifierMap"` // code -> original
	StringMap     map[string]string `json:"stringMap" yaml:"stringMap"`         // replacement -> original content
	LanguageID    string            `json:"languageId" yaml:"languageId"`
}

// Empty reports whether c maps nothing.
func (c Context) Empty() bool {
	return len(c.IdentifierMap) == 0 && len(c.StringMap) == 0
}

// Stats summarizes what a cloak did.
type Stats struct {
	Identifiers  int `json:"identifiers" yaml:"identifiers"`   // distinct names scanned, literals included
	Reserved     int `json:"reserved" yaml:"reserved"`         // of those, kept as reserved
	Abbreviated  int `json:"abbreviated" yaml:"abbreviated"`   // of those, given a different code
	Strings      int `json:"strings" yaml:"strings"`           // distinct literal contents
	Masked       int `json:"masked" yaml:"masked"`             // of those, given a different content
	Replacements int `json:"replacements" yaml:"replacements"` // spans rewritten in the text
}

// Result is the output of TransformWithContext.
type Result struct {
	Transformed string  `json:"transformed"`
	Context     Context `json:"context"`
	Stats       Stats   `json:"stats"`
}

// Transform cloaks text and discards the reverse mapping.
func Transform(text string, opts Options) string {
	return TransformWithContext(text, opts).Transformed
}

// TransformWithContext cloaks text and returns the context that Decloak
// needs to undo it.
//
// Names found inside string literals get mapping entries like any other,
// but their occurrences are never rewritten; the literal as a whole is
// masked instead. When nothing changes the input is returned as is.
func TransformWithContext(text string, opts Options) Result {
	format := opts.StringFormat
	if format == "" {
		format = strmask.PlaceholderShort
	}

	src := []rune(text)
	res := scan.ForLanguage(opts.LanguageID).ScanRunes(src)
	reserved := opts.Keywords.Predicate(opts.LanguageID)

	strMap := strmask.Build(res.Strings, format)

	// Names left verbatim in the output must never be handed out as codes,
	// or decloak would rewrite them.
	verbatim := make(map[string]bool)
	walk(res.Tokens, func(tok scan.Token, in *scan.Token) {
		switch {
		case tok.Kind == scan.KindString:
		case in == nil:
			if reserved(tok.Value) {
				verbatim[tok.Value] = true
			}
		default:
			if r, _ := strMap.Get(in.Value); r == in.Value {
				verbatim[tok.Value] = true
			}
		}
	})

	// Every scanned name takes part in the mapping, in first-seen order,
	// including words that only occur inside literals.
	idMap := abbrev.Build(res.Identifiers, reserved, abbrev.WithBlocked(verbatim))

	var reps []replacement
	walk(res.Tokens, func(tok scan.Token, in *scan.Token) {
		switch {
		case tok.Kind == scan.KindString:
			if r, ok := strMap.Get(tok.Value); ok && r != tok.Value {
				reps = append(reps, quoted(tok, r))
			}
		case in == nil:
			if code, ok := idMap.Get(tok.Value); ok && code != tok.Value {
				reps = append(reps, replacement{start: tok.Start, end: tok.End, text: code})
			}
		}
	})

	out, applied := apply(text, src, reps)

	ctx := Context{
		IdentifierMap: idMap.Reverse(),
		StringMap:     strMap.Reverse(),
		LanguageID:    opts.LanguageID,
	}
	return Result{
		Transformed: out,
		Context:     ctx,
		Stats: Stats{
			Identifiers:  len(res.Identifiers),
			Reserved:     len(res.Identifiers) - idMap.Len(),
			Abbreviated:  len(ctx.IdentifierMap),
			Strings:      strMap.Len(),
			Masked:       len(ctx.StringMap),
			Replacements: applied,
		},
	}
}

// Decloak restores the names and string contents recorded in ctx.
//
// text is scanned with the scanner of ctx.LanguageID and only tokens found
// in ctx are replaced, so a fragment of the cloaked output, or output that
// was edited afterwards, is restored as far as it can be. Identifiers
// inside a literal that is being restored are left to the literal.
func Decloak(text string, ctx Context) string {
	if ctx.Empty() {
		return text
	}

	src := []rune(text)
	res := scan.ForLanguage(ctx.LanguageID).ScanRunes(src)

	var reps []replacement
	walk(res.Tokens, func(tok scan.Token, in *scan.Token) {
		switch {
		case tok.Kind == scan.KindString:
			if orig, ok := ctx.StringMap[tok.Value]; ok {
				reps = append(reps, quoted(tok, orig))
			}
		case in != nil:
			if _, restored := ctx.StringMap[in.Value]; restored {
				return
			}
			fallthrough
		default:
			if orig, ok := ctx.IdentifierMap[tok.Value]; ok {
				reps = append(reps, replacement{start: tok.Start, end: tok.End, text: orig})
			}
		}
	})

	out, _ := apply(text, src, reps)
	return out
}

// walk visits tokens in order. For an identifier inside a string literal,
// in points at that literal's token.
func walk(tokens []scan.Token, fn func(tok scan.Token, in *scan.Token)) {
	var str *scan.Token
	for i := range tokens {
		tok := tokens[i]
		if tok.Kind == scan.KindString {
			str = &tokens[i]
			fn(tok, nil)
			continue
		}
		if str != nil && !str.Contains(tok) {
			str = nil
		}
		fn(tok, str)
	}
}

func quoted(tok scan.Token, content string) replacement {
	q := string(tok.Quote)
	return replacement{start: tok.Start, end: tok.End, text: q + content + q}
}
