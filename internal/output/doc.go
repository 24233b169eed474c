// Package output formats the default keyword catalog and other structured
// values for display or machine consumption.
//
// Four catalog formats are supported:
//   - text     - terminal listing grouped by category (default)
//   - markdown - the "Default keywords" reference document
//   - json     - language, label, count and groups
//   - yaml     - same shape as json
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer], a language key and its groups.
// [WriteValue] encodes arbitrary values, such as a cloak context or the
// effective config, as json or yaml.
package output
