// Package cloak is the reversible transform at the heart of codecloak.
//
// [TransformWithContext] scans a snippet, keeps reserved names, abbreviates
// every other identifier, masks string literal contents and returns the
// rewritten text with a [Context]. [Decloak] uses that context to put the
// original names and strings back, even into a fragment of the output or
// into output that was edited in between.
//
// Nothing here returns an error. Malformed input only means fewer
// substitutions. All functions are pure and safe for concurrent use; the
// caller owns the Context and decides which one is current.
package cloak
