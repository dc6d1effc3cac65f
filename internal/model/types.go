// Package model defines the domain types for the env-helper CLI.
//
// All entities in this package are pure data structures with no external
// dependencies. A ParsedFile is built once per input source by the envfile
// parser, read by the formatter or differ, and discarded when the process
// exits — nothing is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model

import (
	"fmt"
	"strings"
)

// Entry represents a single environment variable: one key/value pair plus
// the comment block attached to it, if any.
//
// Value is the raw remainder of the source line after the first "=" — it is
// never trimmed, unquoted, or re-escaped. Whitespace is stripped from the
// key only.
type Entry struct {
	// Key is the variable name, with surrounding whitespace stripped.
	Key string `json:"key" yaml:"key"`

	// Value is the raw text after the first "=" on the defining line.
	Value string `json:"value" yaml:"value"`

	// Comment holds the verbatim comment lines immediately preceding the
	// defining line, in original order. Nil when the entry has no comment.
	Comment []string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Prefix returns the grouping prefix of the entry's key: the substring
// before the first underscore, or the whole key when it contains none.
//
// Examples:
//
//	DB_HOST  → "DB"
//	VERSION  → "VERSION"
//	_HIDDEN  → ""
func (e Entry) Prefix() string {
	if i := strings.IndexByte(e.Key, '_'); i >= 0 {
		return e.Key[:i]
	}
	return e.Key
}

// ParsedFile is an ordered collection of entries parsed from one source,
// indexed by key for O(1) lookup. Iteration order (Keys) is insertion order
// from the source; the formatter re-sorts, so insertion order never reaches
// program output.
//
// A ParsedFile is built once by the parser and treated as read-only by
// every consumer. Use NewParsedFile to construct one.
type ParsedFile struct {
	// Name is the display label for this source: the file path as given on
	// the command line, or the docker:// reference for container sources.
	Name string

	// entries maps key → entry for constant-time lookups.
	entries map[string]Entry

	// order records keys in first-insertion order. A redefinition keeps the
	// key's original position.
	order []string
}

// NewParsedFile creates an empty ParsedFile with the given display label.
func NewParsedFile(name string) *ParsedFile {
	return &ParsedFile{
		Name:    name,
		entries: make(map[string]Entry),
	}
}

// Set stores an entry, replacing any prior entry with the same key
// wholesale: the last write wins for the value AND the comment. A
// redefinition without a comment therefore drops the earlier comment.
// The key keeps its first-insertion position in the iteration order.
func (p *ParsedFile) Set(key, value string, comment []string) {
	if _, exists := p.entries[key]; !exists {
		p.order = append(p.order, key)
	}
	p.entries[key] = Entry{Key: key, Value: value, Comment: comment}
}

// Get returns the entry for the given key and whether it exists.
func (p *ParsedFile) Get(key string) (Entry, bool) {
	e, ok := p.entries[key]
	return e, ok
}

// Has reports whether the given key is present.
func (p *ParsedFile) Has(key string) bool {
	_, ok := p.entries[key]
	return ok
}

// Keys returns all keys in first-insertion order. The returned slice is a
// copy; callers may sort or mutate it freely.
func (p *ParsedFile) Keys() []string {
	keys := make([]string, len(p.order))
	copy(keys, p.order)
	return keys
}

// Len returns the number of entries.
func (p *ParsedFile) Len() int {
	return len(p.entries)
}

// Report is the result of comparing two parsed sources. It has three
// sections, each internally sorted by key in ascending byte order. Empty
// sections are empty slices, never nil, so JSON and YAML output renders
// them as [] rather than null.
type Report struct {
	// FirstLabel is the display label of the first source.
	FirstLabel string `json:"firstLabel" yaml:"firstLabel"`

	// SecondLabel is the display label of the second source.
	SecondLabel string `json:"secondLabel" yaml:"secondLabel"`

	// UniqueToFirst lists keys present only in the first source.
	UniqueToFirst []string `json:"uniqueToFirst" yaml:"uniqueToFirst"`

	// UniqueToSecond lists keys present only in the second source.
	UniqueToSecond []string `json:"uniqueToSecond" yaml:"uniqueToSecond"`

	// ValueDiffs lists keys present in both sources whose values differ,
	// with both literal values.
	ValueDiffs []ValueDiff `json:"valueDiffs" yaml:"valueDiffs"`
}

// Empty reports whether all three report sections are empty, meaning the
// two sources agree on every key and value.
func (r *Report) Empty() bool {
	return len(r.UniqueToFirst) == 0 && len(r.UniqueToSecond) == 0 && len(r.ValueDiffs) == 0
}

// ValueDiff records one key that exists in both compared sources with
// different values. Values are the raw stored strings, compared by exact
// string inequality.
type ValueDiff struct {
	// Key is the variable name.
	Key string `json:"key" yaml:"key"`

	// FirstValue is the raw value from the first source.
	FirstValue string `json:"firstValue" yaml:"firstValue"`

	// SecondValue is the raw value from the second source.
	SecondValue string `json:"secondValue" yaml:"secondValue"`
}

// OutputFormat selects how command results are rendered on stdout.
type OutputFormat string

const (
	// OutputText renders the plain-text form: the canonical three-section
	// report for compare, the formatted file text for fmt.
	OutputText OutputFormat = "text"

	// OutputJSON renders results as indented JSON for machine consumption.
	OutputJSON OutputFormat = "json"

	// OutputYAML renders results as YAML for machine consumption.
	OutputYAML OutputFormat = "yaml"
)

// String returns the string representation of the OutputFormat.
// This method satisfies the fmt.Stringer interface.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat is one of the defined values.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// Returns an error if the string does not match any valid format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// ExitCode defines the CLI process exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitUsageError indicates bad invocation: wrong arguments, an unknown
	// flag, an invalid --output value, or a missing/unreadable input file.
	ExitUsageError ExitCode = 1

	// ExitConfigError indicates the tool configuration file could not be
	// read or contained invalid JSONC.
	ExitConfigError ExitCode = 2

	// ExitDockerUnavailable indicates the Docker daemon is unreachable or
	// a referenced container could not be inspected.
	ExitDockerUnavailable ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
