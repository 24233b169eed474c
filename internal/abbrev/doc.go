// Package abbrev shortens identifiers to initials and resolves the
// collisions that shortening creates.
package abbrev
