// Package redact scrubs secrets from cloaked output before it leaves the
// machine.
//
// Cloaking hides names and string contents but keeps their shape; a token
// pasted into a comment, or kept verbatim by the abbreviate string format,
// would still travel. Detection uses regex heuristics covering common secret
// shapes: API keys, JWTs, private keys, AWS access key IDs and secret access
// keys, bearer tokens, database connection strings, and provider-specific
// tokens (Anthropic, OpenAI, GitHub, Slack).
//
// Path-based exclusion is also supported: [Guard] refuses input files whose
// paths match configured glob patterns, so they are never cloaked at all.
package redact
