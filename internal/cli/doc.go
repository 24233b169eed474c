// Package cli wires together the Cobra command tree for the codecloak binary.
//
// It defines the root command and all subcommands (cloak, decloak, keywords,
// context, config, serve, version), binds flags, reads configuration, runs
// the cloak service, and returns deterministic exit codes: 0 on success, 2
// for usage errors, 3 when decloak finds no context, 4 for runtime failures.
package cli
