package strmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviateText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Isso é uma string", "Is é um st"},
		{"/opt/teste/teste2", "/op/te/te2"},
		{"Hello, World!", "He, Wo!"},
		{"v12345", "v12"},
		{"ação", "aç"},
		{"a b", "a b"},
		{"日本語 text", "日本語 te"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, AbbreviateText(tt.in))
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", PlaceholderShort, false},
		{"s1", PlaceholderShort, false},
		{"placeholder-short", PlaceholderShort, false},
		{"STR1", PlaceholderLong, false},
		{"placeholder-long", PlaceholderLong, false},
		{" abbreviate ", Abbreviate, false},
		{"rot13", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func entries(m *Mapping) map[string]string {
	out := make(map[string]string)
	for c, r := range m.All() {
		out[c] = r
	}
	return out
}

func TestBuild_Placeholders(t *testing.T) {
	short := Build([]string{"hello", "world", "hello"}, PlaceholderShort)
	assert.Equal(t, map[string]string{"hello": "s1", "world": "s2"}, entries(short))

	long := Build([]string{"hello", "world"}, PlaceholderLong)
	assert.Equal(t, map[string]string{"hello": "str1", "world": "str2"}, entries(long))

	var order []string
	for c := range long.All() {
		order = append(order, c)
	}
	assert.Equal(t, []string{"hello", "world"}, order)
}

func TestBuild_UnknownFormatUsesShortPlaceholders(t *testing.T) {
	m := Build([]string{"x"}, Format("other"))
	r, _ := m.Get("x")
	assert.Equal(t, "s1", r)
}

func TestBuild_Abbreviate(t *testing.T) {
	m := Build([]string{"Isso é uma string", "/opt/teste/teste2"}, Abbreviate)
	assert.Equal(t, map[string]string{
		"Isso é uma string": "Is é um st",
		"/opt/teste/teste2": "/op/te/te2",
	}, entries(m))
}

func TestBuild_AbbreviateKeepsReplacementsDistinct(t *testing.T) {
	m := Build([]string{"Hello World", "Help Wow", "Hey Wolf"}, Abbreviate)
	assert.Equal(t, map[string]string{
		"Hello World": "He Wo",
		"Help Wow":    "He Wo2",
		"Hey Wolf":    "He Wo3",
	}, entries(m))
}

func TestBuild_AbbreviateAvoidsVerbatimContents(t *testing.T) {
	m := Build([]string{"abc", "ab"}, Abbreviate)

	assert.Equal(t, map[string]string{"abc": "ab2", "ab": "ab"}, entries(m))
	assert.Equal(t, map[string]string{"ab2": "abc"}, m.Reverse())
}
