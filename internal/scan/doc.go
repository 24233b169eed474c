// Package scan tokenizes a source snippet into identifier and string-literal
// tokens with character (rune) offsets.
//
// Two scanner variants exist: [CLike] for the JavaScript family (identifiers
// may contain '$', backtick template literals with ${...} interpolation) and
// [Ruby] (identifiers may end in '?' or '!', only single and double quoted
// strings). [ForLanguage] selects one from an editor language id and falls
// back to [CLike] for anything it does not recognize.
//
// Identifier occurrences are reported everywhere in the text, including
// inside string literal content; callers that must not touch literal text
// filter those out by span.
package scan
