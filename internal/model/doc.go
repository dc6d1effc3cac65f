// Package model defines the domain types and value objects for the
// env-helper CLI.
//
// This package contains pure data structures with no external dependencies:
//
//   - Entry: one key/value pair plus its attached comment block
//   - ParsedFile: an ordered, key-indexed collection of entries from one source
//   - Report / ValueDiff: the three-section result of comparing two sources
//   - OutputFormat: the text/json/yaml output selector
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
