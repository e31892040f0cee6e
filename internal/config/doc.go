// Package config loads the sync server configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with first-non-zero-wins semantics and validating the result.
package config
