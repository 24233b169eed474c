package abbrev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"API_KEY", "A_K"},
		{"MAX_RETRY_COUNT", "M_R_C"},
		{"HTTP2_PORT", "H_P"},
		{"user_profile", "u_p"},
		{"total__sum", "t_s"},
		{"UserProfile", "UP"},
		{"URL", "URL"},
		{"Vec3D", "VD"},
		{"calculateOrder", "cO"},
		{"getHTTPResponse", "gHTTPR"},
		{"materials", "m"},
		{"x", "x"},
		{"X", "X"},
		{"_private", "_"},
		{"$el", "$"},
		{"valid?", "v?"},
		{"save!", "s!"},
		{"user_valid?", "u_v?"},
		{"Trailing_", "T"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.name))
		})
	}
}

func codes(m *Mapping) map[string]string {
	out := make(map[string]string)
	for name, code := range m.All() {
		out[name] = code
	}
	return out
}

func TestBuild_NoCollisions(t *testing.T) {
	m := Build([]string{"userName", "API_KEY", "order_total"}, nil)

	assert.Equal(t, map[string]string{
		"userName":    "uN",
		"API_KEY":     "A_K",
		"order_total": "o_t",
	}, codes(m))
}

func TestBuild_SkipsReserved(t *testing.T) {
	reserved := func(name string) bool { return name == "map" || name == "each" }
	m := Build([]string{"items", "map", "each", "item"}, reserved)

	_, ok := m.Get("map")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestBuild_CollisionUsesCollidingNameLetters(t *testing.T) {
	m := Build([]string{"materials", "material"}, nil)
	assert.Equal(t, map[string]string{"materials": "m", "material": "ma"}, codes(m))

	// Order in the batch decides who keeps the bare code.
	m = Build([]string{"material", "materials"}, nil)
	assert.Equal(t, map[string]string{"material": "m", "materials": "ma"}, codes(m))
}

func TestBuild_CollisionLettersArePerGroup(t *testing.T) {
	m := Build([]string{"count", "cart", "cache", "value", "vat"}, nil)

	assert.Equal(t, map[string]string{
		"count": "c",
		"cart":  "ca",
		"cache": "ch",
		"value": "v",
		"vat":   "va",
	}, codes(m))
}

func TestBuild_AlphabetFallback(t *testing.T) {
	// "mm" has no letter left after the group's 'm', so the alphabet is used.
	m := Build([]string{"mx", "mm", "m"}, nil)

	assert.Equal(t, map[string]string{"mx": "m", "mm": "ma", "m": "mb"}, codes(m))
}

func TestBuild_CodesAreUnique(t *testing.T) {
	names := []string{"a", "b", "abc", "ab", "aa", "bca", "bab", "a_b", "aB", "AB", "A_B"}
	m := Build(names, nil)

	seen := make(map[string]string)
	for name, code := range m.All() {
		prev, dup := seen[code]
		require.False(t, dup, "%s and %s share %s", prev, name, code)
		seen[code] = name
	}
}

func TestBuild_Blocked(t *testing.T) {
	m := Build([]string{"price", "payment"}, nil, WithBlocked(map[string]bool{"p": true, "p2": true}))

	assert.Equal(t, map[string]string{"price": "p3", "payment": "pa"}, codes(m))
}

func TestBuild_BlockedNameKeepsItself(t *testing.T) {
	// "a" stays verbatim elsewhere in the output; as a name of its own it
	// may still map to itself, but nothing else may take it.
	m := Build([]string{"a", "abc"}, nil, WithBlocked(map[string]bool{"a": true}))

	assert.Equal(t, map[string]string{"a": "a", "abc": "ab"}, codes(m))
	assert.Empty(t, m.Reverse()["a"])
}

func TestIdentifier_SuffixKeptOnCode(t *testing.T) {
	assert.Equal(t, "v", Identifier("valid"))
	assert.Equal(t, "v?", Identifier("valid?"))
	assert.Equal(t, "v!", Identifier("valid!"))
	assert.Equal(t, "?", Identifier("?"))
}

func TestBuild_SuffixStaysLast(t *testing.T) {
	m := Build([]string{"valid?", "value?", "valid"}, nil, WithBlocked(map[string]bool{"v?": true}))

	assert.Equal(t, map[string]string{"valid?": "v2?", "value?": "va?", "valid": "v"}, codes(m))
}

func TestBuild_DuplicateNamesIgnored(t *testing.T) {
	m := Build([]string{"order", "order", "other"}, nil)
	assert.Equal(t, map[string]string{"order": "o", "other": "ot"}, codes(m))
}

func TestMapping_Reverse(t *testing.T) {
	m := NewMapping()
	m.Set("userName", "uN")
	m.Set("m", "m")
	m.Set("userName", "uN2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, map[string]string{"uN2": "userName"}, m.Reverse())
}
