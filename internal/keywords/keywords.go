package keywords

// Config carries the user overrides for one classification. Each map is
// keyed by a config key (see ConfigKey) and lists verbatim names.
type Config struct {
	// AbbreviateFrameworkHooks turns off preservation of the React hooks.
	// The zero value preserves them.
	AbbreviateFrameworkHooks bool `json:"abbreviateFrameworkHooks,omitempty"`

	Legacy  map[string][]string `json:"customKeywords,omitempty"`
	Add     map[string][]string `json:"keywordsAdd,omitempty"`
	Exclude map[string][]string `json:"keywordsExclude,omitempty"`
}

// Predicate reports whether a name must be left untouched.
type Predicate func(name string) bool

var configKeys = map[string]string{
	"javascriptreact": "javascript",
	"typescriptreact": "typescript",
	"erb":             "ruby",
}

// ConfigKey normalizes an editor language id to the key used by the
// override maps. JSX dialects share the key of their base language and
// erb shares ruby's; every other id is its own key.
func ConfigKey(languageID string) string {
	if key, ok := configKeys[languageID]; ok {
		return key
	}
	return languageID
}

// IsReserved reports whether name is reserved for languageID under c.
func (c Config) IsReserved(name, languageID string) bool {
	return c.Predicate(languageID)(name)
}

// Predicate builds the reserved-name predicate for languageID. The override
// lists are copied into sets, so later changes to c do not affect it.
//
// Resolution order: an added or legacy name is reserved; otherwise an
// excluded name is not; otherwise hooks are reserved unless hook
// abbreviation is on; otherwise the language default set decides. Ruby
// names ending in '?' or '!' fall back to their stem.
func (c Config) Predicate(languageID string) Predicate {
	key := ConfigKey(languageID)

	add := newSet(c.Legacy[key], c.Add[key])
	exclude := newSet(c.Exclude[key])
	defaults := defaultSet(languageID)
	hooks := !c.AbbreviateFrameworkHooks

	check := func(name string) bool {
		if add.has(name) {
			return true
		}
		if exclude.has(name) {
			return false
		}
		if hooks && hookSet.has(name) {
			return true
		}
		return defaults.has(name)
	}
	if key != "ruby" {
		return check
	}

	// In Ruby, map! and empty? belong to map and empty: a suffixed name is
	// reserved when its stem is, unless it is excluded itself.
	return func(name string) bool {
		if check(name) {
			return true
		}
		stem, ok := rubyStem(name)
		if !ok || exclude.has(name) {
			return false
		}
		return check(stem)
	}
}

// rubyStem strips one trailing '?' or '!' from name.
func rubyStem(name string) (string, bool) {
	if len(name) < 2 {
		return "", false
	}
	switch name[len(name)-1] {
	case '?', '!':
		return name[:len(name)-1], true
	}
	return "", false
}

// IsDefault reports whether name is in the built-in vocabulary for
// languageID, ignoring hooks and user overrides.
func IsDefault(name, languageID string) bool {
	return defaultSet(languageID).has(name)
}

// IsFrameworkHook reports whether name is one of the preserved React hooks.
func IsFrameworkHook(name string) bool {
	return hookSet.has(name)
}

type set map[string]struct{}

func newSet(lists ...[]string) set {
	s := make(set)
	for _, list := range lists {
		for _, name := range list {
			s[name] = struct{}{}
		}
	}
	return s
}

func (s set) has(name string) bool {
	_, ok := s[name]
	return ok
}

var (
	jsReserved = newSet(
		jsKeywords, jsGlobals, reactCore, jsxIntrinsic, jsxProps,
		reactNative, reactRedux, lodash, jsArrayMethods, jsObjectMethods,
	)
	tsReserved = newSet(
		jsKeywords, jsGlobals, reactCore, jsxIntrinsic, jsxProps,
		reactNative, reactRedux, lodash, jsArrayMethods, jsObjectMethods,
		tsExtra,
	)
	rubyReserved = newSet(
		rubyKeywords, rubySpecial, rubyKernel, rubyObject,
		railsController, railsActiveRecord, railsRoutes, rubyEnumerable,
	)
	hookSet = newSet(reactHooks)
)

// defaultSet picks the built-in vocabulary. Ids outside the known families
// get the JavaScript set, matching the scanner fallback.
func defaultSet(languageID string) set {
	switch languageID {
	case "typescript", "typescriptreact":
		return tsReserved
	case "ruby", "erb":
		return rubyReserved
	default:
		return jsReserved
	}
}
