// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// layers flags over the YAML query file and environment overrides and
// hands a validated config.Config to the application.
package cli
