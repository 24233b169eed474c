// Package store persists the most recent cloak context between a cloak and
// the decloak that follows it.
//
// There is exactly one slot, named by [Key]; saving replaces whatever was
// there. Three backends implement [Store]: a JSON file under
// $XDG_CACHE_HOME/codecloak (or the OS-appropriate equivalent), a SQLite
// database, and process memory. Each stored [Envelope] carries a
// time-ordered id and a HighwayHash fingerprint of the cloaked text, so a
// decloak can tell whether it was handed the exact output or an edited or
// partial copy.
//
// Contexts older than the configured TTL are treated as absent and removed
// on read. A TTL of zero never expires.
package store
