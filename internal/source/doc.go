// Package source loads snippets to cloak and writes results back, from
// stdin and stdout, local paths, or any storage URL afs understands. It also
// guesses a language id from a file name.
package source
