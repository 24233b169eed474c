package abbrev

import "iter"

// Mapping is an insertion-ordered name to code table.
type Mapping struct {
	names []string
	codes map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{codes: make(map[string]string)}
}

// Set records the code for name. Setting an existing name keeps its
// position.
func (m *Mapping) Set(name, code string) {
	if _, ok := m.codes[name]; !ok {
		m.names = append(m.names, name)
	}
	m.codes[name] = code
}

// Get returns the code for name.
func (m *Mapping) Get(name string) (string, bool) {
	code, ok := m.codes[name]
	return code, ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.names)
}

// All iterates the entries in insertion order.
func (m *Mapping) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range m.names {
			if !yield(name, m.codes[name]) {
				return
			}
		}
	}
}

// Reverse returns code to name for every entry whose code differs from
// its name.
func (m *Mapping) Reverse() map[string]string {
	out := make(map[string]string, len(m.names))
	for name, code := range m.All() {
		if code != name {
			out[code] = name
		}
	}
	return out
}
