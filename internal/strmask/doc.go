// Package strmask hides the contents of string literals, either behind
// numbered placeholders or by abbreviating every word to two characters.
// Mapped values never include the quote delimiters.
package strmask
