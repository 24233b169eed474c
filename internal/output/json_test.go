package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dshills/codecloak/internal/keywords"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, "ruby", sampleGroups); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed catalogDoc
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.Label != "Ruby" {
		t.Errorf("Label = %q, want %q", parsed.Label, "Ruby")
	}
	if parsed.Count != 3 {
		t.Errorf("Count = %d, want 3", parsed.Count)
	}
	if len(parsed.Groups) != 2 || parsed.Groups[1].Category != "Kernel" {
		t.Errorf("Groups = %+v", parsed.Groups)
	}
}

func TestJSONWriter_FullCatalog(t *testing.T) {
	groups := keywords.CatalogFor("typescript")
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, "typescript", groups); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed catalogDoc
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.Label != "TypeScript" {
		t.Errorf("Label = %q, want TypeScript", parsed.Label)
	}
	if parsed.Count != keywords.Count(groups) {
		t.Errorf("Count = %d, want %d", parsed.Count, keywords.Count(groups))
	}
	if len(parsed.Groups) != len(groups) {
		t.Errorf("got %d groups, want %d", len(parsed.Groups), len(groups))
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &YAMLWriter{}
	if err := w.Write(&buf, "ruby", sampleGroups); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed catalogDoc
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if parsed.Language != "ruby" {
		t.Errorf("Language = %q, want ruby", parsed.Language)
	}
	if got := parsed.Groups[0].Keywords; len(got) != 2 || got[0] != "def" {
		t.Errorf("Keywords = %q", got)
	}
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		want    Writer
		wantErr bool
	}{
		{"text", &TextWriter{}, false},
		{"", &TextWriter{}, false},
		{"markdown", &MarkdownWriter{}, false},
		{"md", &MarkdownWriter{}, false},
		{"json", &JSONWriter{}, false},
		{"yaml", &YAMLWriter{}, false},
		{"sarif", nil, true},
	}
	for _, tt := range tests {
		got, err := GetWriter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetWriter(%q) expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetWriter(%q) error: %v", tt.format, err)
			continue
		}
		if !sameType(got, tt.want) {
			t.Errorf("GetWriter(%q) = %T, want %T", tt.format, got, tt.want)
		}
	}
}

func sameType(a, b Writer) bool {
	switch a.(type) {
	case *TextWriter:
		_, ok := b.(*TextWriter)
		return ok
	case *MarkdownWriter:
		_, ok := b.(*MarkdownWriter)
		return ok
	case *JSONWriter:
		_, ok := b.(*JSONWriter)
		return ok
	case *YAMLWriter:
		_, ok := b.(*YAMLWriter)
		return ok
	}
	return false
}

func TestWriteValue(t *testing.T) {
	v := map[string]string{"languageId": "ruby"}

	var js bytes.Buffer
	if err := WriteValue(&js, "json", v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if js.String() != "{\n  \"languageId\": \"ruby\"\n}\n" {
		t.Errorf("json = %q", js.String())
	}

	var ym bytes.Buffer
	if err := WriteValue(&ym, "yaml", v); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if ym.String() != "languageId: ruby\n" {
		t.Errorf("yaml = %q", ym.String())
	}

	if err := WriteValue(&js, "toml", v); err == nil {
		t.Error("expected error for unsupported format")
	}
}
