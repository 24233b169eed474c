package abbrev

import (
	"strconv"
	"strings"
	"unicode"
)

// Identifier returns the bare short code for name, without collision
// handling. The first matching rule wins:
//
//	API_KEY        -> A_K  (upper snake)
//	user_profile   -> u_p  (lower snake)
//	UserProfile    -> UP   (Pascal case)
//	calculateOrder -> cO   (camel case)
//	anything else  -> first character
//
// A trailing '?' or '!' is cut off before the rules run and appended to the
// result, so valid? gives v? rather than the bare first character v. This
// keeps ready?, ready! and ready on distinct codes.
func Identifier(name string) string {
	if stem, suffix := splitSuffix(name); suffix != "" {
		return Identifier(stem) + suffix
	}
	if name == "" {
		return name
	}
	switch {
	case isUpperSnake(name):
		return joinInitials(splitSnake(name), "_", strings.ToUpper)
	case isLowerSnake(name):
		return joinInitials(splitSnake(name), "_", strings.ToLower)
	case isPascal(name):
		return joinInitials(splitWords(name), "", strings.ToUpper)
	case isCamel(name):
		parts := splitWords(name)
		return initial(parts[0], strings.ToLower) + joinInitials(parts[1:], "", strings.ToUpper)
	}
	r := []rune(name)
	return string(r[:1])
}

// splitSuffix separates a predicate or bang suffix from the rest of name.
func splitSuffix(name string) (stem, suffix string) {
	if len(name) > 1 && (strings.HasSuffix(name, "?") || strings.HasSuffix(name, "!")) {
		return name[:len(name)-1], name[len(name)-1:]
	}
	return name, ""
}

func isUpperSnake(name string) bool {
	return matches(name, isUpper, func(r rune) bool { return isUpper(r) || isDigit(r) || r == '_' }) &&
		strings.Contains(name, "_")
}

func isLowerSnake(name string) bool {
	return matches(name, isLower, func(r rune) bool { return isLower(r) || isDigit(r) || r == '_' }) &&
		strings.Contains(name, "_")
}

func isPascal(name string) bool {
	return len(name) > 1 && matches(name, isUpper, isAlnum)
}

func isCamel(name string) bool {
	return matches(name, isLower, isAlnum) && strings.IndexFunc(name, isUpper) >= 0
}

// matches reports whether name starts with a rune accepted by first and
// continues with runes accepted by rest.
func matches(name string, first, rest func(rune) bool) bool {
	for i, r := range name {
		if i == 0 {
			if !first(r) {
				return false
			}
			continue
		}
		if !rest(r) {
			return false
		}
	}
	return name != ""
}

func splitSnake(name string) []string {
	var parts []string
	for _, p := range strings.Split(name, "_") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// splitWords splits at every uppercase letter: calculateOrder -> calculate, order.
func splitWords(name string) []string {
	var parts []string
	var cur strings.Builder
	for _, r := range name {
		if isUpper(r) {
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
			r = unicode.ToLower(r)
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// initial folds the first byte of part. Parts come from names that matched
// an ASCII-only rule.
func initial(part string, fold func(string) string) string {
	if part == "" {
		return ""
	}
	return fold(part[:1])
}

func joinInitials(parts []string, sep string, fold func(string) string) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = initial(p, fold)
	}
	return strings.Join(out, sep)
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlnum(r rune) bool { return isUpper(r) || isLower(r) || isDigit(r) }

// Option configures Build.
type Option func(*builder)

// WithBlocked marks codes that must not be handed out because the name
// they spell stays verbatim in the output. A code that hits the set gets
// the smallest numeric suffix, starting at 2, that frees it.
func WithBlocked(blocked map[string]bool) Option {
	return func(b *builder) {
		for name, ok := range blocked {
			if ok {
				b.blocked[name] = true
			}
		}
	}
}

type builder struct {
	blocked map[string]bool
}

// Build maps the distinct, non-reserved names to codes. Names are
// processed in the given order; reserved names get no entry.
//
// Names that share a bare code form a collision group. The first name of
// a group keeps the bare code. Each later name appends one lowercase letter
// taken from its own letters, left to right, skipping letters already used
// in the group; the bare code's letters count as used. A name without a
// free letter takes the first free letter of the alphabet, and 'x' once
// all 26 are gone. Letters and numeric suffixes go before a trailing '?'
// or '!'.
func Build(names []string, reserved func(string) bool, opts ...Option) *Mapping {
	b := &builder{blocked: make(map[string]bool)}
	for _, opt := range opts {
		opt(b)
	}

	var bases []string
	groups := make(map[string][]string)
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] || (reserved != nil && reserved(name)) {
			continue
		}
		seen[name] = true
		base := Identifier(name)
		if _, ok := groups[base]; !ok {
			bases = append(bases, base)
		}
		groups[base] = append(groups[base], name)
	}

	m := NewMapping()
	assigned := make(map[string]bool)
	for _, base := range bases {
		members := groups[base]
		used := letterSet(base)
		stem, suffix := splitSuffix(base)
		for i, name := range members {
			code := stem
			if i > 0 {
				code += nextLetter(name, used)
			}
			code = b.free(name, code, suffix, assigned)
			assigned[code] = true
			m.Set(name, code)
		}
	}
	return m
}

// free returns stem+suffix, or stem with a number before suffix when that
// code is blocked or already taken. A name may always keep itself as its
// code if no other name holds it.
func (b *builder) free(name, stem, suffix string, assigned map[string]bool) string {
	code := stem + suffix
	if (code == name || !b.blocked[code]) && !assigned[code] {
		return code
	}
	for n := 2; ; n++ {
		candidate := stem + strconv.Itoa(n) + suffix
		if !b.blocked[candidate] && !assigned[candidate] {
			return candidate
		}
	}
}

func letterSet(code string) map[rune]bool {
	used := make(map[rune]bool)
	for _, r := range code {
		if isUpper(r) || isLower(r) {
			used[unicode.ToLower(r)] = true
		}
	}
	return used
}

func nextLetter(name string, used map[rune]bool) string {
	for _, r := range name {
		if !isUpper(r) && !isLower(r) {
			continue
		}
		r = unicode.ToLower(r)
		if !used[r] {
			used[r] = true
			return string(r)
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		if !used[r] {
			used[r] = true
			return string(r)
		}
	}
	return "x"
}
