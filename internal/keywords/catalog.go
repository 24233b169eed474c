package keywords

import (
	"slices"
	"strings"
)

// Group is one category of the default vocabulary.
type Group struct {
	Category string   `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Catalog languages, in display order.
var catalogLanguages = []string{"javascript", "typescript", "ruby"}

var catalogLabels = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"ruby":       "Ruby",
}

var catalog = map[string][]Group{
	"javascript": {
		group("Keywords (ES2023)", jsKeywords),
		group("Globals", jsGlobals),
		group("React", reactCore, jsxIntrinsic, jsxProps, reactNative, reactRedux),
		group("React hooks", reactHooks),
		group("Lodash", lodash),
		group("Array methods", jsArrayMethods),
		group("Object methods", jsObjectMethods),
	},
	"typescript": {
		group("Keywords (ES2023)", jsKeywords),
		group("TypeScript", tsExtra),
		group("Globals", jsGlobals),
		group("React", reactCore, jsxIntrinsic, jsxProps, reactNative, reactRedux),
		group("React hooks", reactHooks),
		group("Lodash", lodash),
		group("Array methods", jsArrayMethods),
		group("Object methods", jsObjectMethods),
	},
	"ruby": {
		group("Keywords", rubyKeywords),
		group("Special", rubySpecial),
		group("Kernel", rubyKernel),
		group("Object", rubyObject),
		group("Enumerable", rubyEnumerable),
		group("Rails Controller", railsController),
		group("Rails ActiveRecord", railsActiveRecord),
		group("Rails Routes", railsRoutes),
	},
}

func group(category string, lists ...[]string) Group {
	var names []string
	for _, list := range lists {
		names = append(names, list...)
	}
	slices.Sort(names)
	return Group{Category: category, Keywords: slices.Compact(names)}
}

// Languages returns the catalog language keys in display order.
func Languages() []string {
	return slices.Clone(catalogLanguages)
}

// Label returns the display name of a catalog language.
func Label(lang string) string {
	if label, ok := catalogLabels[lang]; ok {
		return label
	}
	return lang
}

// CatalogKey maps a language id to the catalog entry describing its
// default vocabulary.
func CatalogKey(languageID string) string {
	switch languageID {
	case "typescript", "typescriptreact":
		return "typescript"
	case "ruby", "erb":
		return "ruby"
	default:
		return "javascript"
	}
}

// CatalogFor returns the default vocabulary of languageID grouped by
// category, names sorted within each group. The result is a fresh copy.
func CatalogFor(languageID string) []Group {
	groups := catalog[CatalogKey(languageID)]
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Category: g.Category, Keywords: slices.Clone(g.Keywords)}
	}
	return out
}

// Catalog returns the grouped default vocabulary of every catalog language.
func Catalog() map[string][]Group {
	out := make(map[string][]Group, len(catalogLanguages))
	for _, lang := range catalogLanguages {
		out[lang] = CatalogFor(lang)
	}
	return out
}

// Count returns the number of names listed across groups.
func Count(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Keywords)
	}
	return n
}

// ParseLanguage resolves user input such as "js", "TS" or "rb" to a catalog
// language key. ok is false when nothing matches.
func ParseLanguage(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js", "javascriptreact", "jsx", "graphql", "html":
		return "javascript", true
	case "typescript", "ts", "typescriptreact", "tsx":
		return "typescript", true
	case "ruby", "rb", "erb":
		return "ruby", true
	default:
		return "", false
	}
}

// NormalizeLanguage expands the short names js, jsx, ts, tsx and rb to
// full language ids and lowercases anything else.
func NormalizeLanguage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "js":
		return "javascript"
	case "jsx":
		return "javascriptreact"
	case "ts":
		return "typescript"
	case "tsx":
		return "typescriptreact"
	case "rb":
		return "ruby"
	default:
		return s
	}
}
