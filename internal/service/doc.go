// Package service is the host layer shared by the CLI and the HTTP server:
// it resolves engine options from config, scrubs cloaked output, and keeps
// the last cloak context in a store.
package service
