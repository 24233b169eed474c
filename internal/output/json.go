package output

import (
	"io"

	"github.com/dshills/codecloak/internal/keywords"
)

// catalogDoc is the structured form shared by the json and yaml writers.
type catalogDoc struct {
	Language string           `json:"language" yaml:"language"`
	Label    string           `json:"label" yaml:"label"`
	Count    int              `json:"count" yaml:"count"`
	Groups   []keywords.Group `json:"groups" yaml:"groups"`
}

func newCatalogDoc(lang string, groups []keywords.Group) catalogDoc {
	return catalogDoc{
		Language: lang,
		Label:    keywords.Label(lang),
		Count:    keywords.Count(groups),
		Groups:   groups,
	}
}

// JSONWriter outputs the catalog as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, lang string, groups []keywords.Group) error {
	return WriteValue(w, "json", newCatalogDoc(lang, groups))
}

// YAMLWriter outputs the catalog as YAML.
type YAMLWriter struct{}

func (y *YAMLWriter) Write(w io.Writer, lang string, groups []keywords.Group) error {
	return WriteValue(w, "yaml", newCatalogDoc(lang, groups))
}
