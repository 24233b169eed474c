package strmask

import "iter"

// Mapping is an insertion-ordered content to replacement table.
type Mapping struct {
	contents []string
	repl     map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{repl: make(map[string]string)}
}

// Set records the replacement for content.
func (m *Mapping) Set(content, replacement string) {
	if _, ok := m.repl[content]; !ok {
		m.contents = append(m.contents, content)
	}
	m.repl[content] = replacement
}

// Get returns the replacement for content.
func (m *Mapping) Get(content string) (string, bool) {
	r, ok := m.repl[content]
	return r, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.contents)
}

// All iterates the entries in first-seen order.
func (m *Mapping) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, c := range m.contents {
			if !yield(c, m.repl[c]) {
				return
			}
		}
	}
}

// Reverse returns replacement to content for every entry that changes its
// content.
func (m *Mapping) Reverse() map[string]string {
	out := make(map[string]string, len(m.contents))
	for c, r := range m.All() {
		if r != c {
			out[r] = c
		}
	}
	return out
}
