// Package config loads and merges codecloak configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CODECLOAK_LANGUAGE, CODECLOAK_STRING_FORMAT,
//     CODECLOAK_PRESERVE_HOOKS, etc.), including those from a .env file in
//     the config directory or the working directory
//  3. Config file ($XDG_CONFIG_HOME/codecloak/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write it back, and
// [SetField] to update a single key. [Config.CloakOptions] turns the
// effective config into engine options.
package config
