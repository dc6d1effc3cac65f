// Package envfile implements the parsing, formatting, and comparison engine
// for .env-style configuration sources.
//
// Parsing is a single forward pass over the input lines and is total: it
// never fails on malformed input. Lines without an "=" are dropped
// silently, and comment blocks attach to the next key line encountered.
package envfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/willsfidell/env-helper/internal/model"
)

// commentLine matches comment lines: optional leading whitespace followed
// by "#". Matching lines are preserved verbatim, including the whitespace.
var commentLine = regexp.MustCompile(`^\s*#`)

// Parse converts raw source text into a ParsedFile labeled with name.
//
// The algorithm is one pass over the lines (split on "\n", which also
// handles a missing trailing newline on the last line):
//
//  1. A comment line is appended verbatim to the pending comment block.
//  2. An exactly-empty line (zero-length, no trimming) discards the pending
//     block. Whitespace-only lines are NOT blank — they fall through to
//     rule 3.
//  3. A line without "=" is skipped. The pending block is left untouched,
//     so a comment still attaches to the next key line after such a line.
//  4. Any other line splits on its FIRST "=": the key is the text before
//     (whitespace stripped), the value is the raw text after. The entry
//     replaces any prior entry with the same key wholesale — last write
//     wins for the value and the comment both. A non-empty pending block
//     attaches to the entry; the block is cleared either way.
//
// Parse is total: any text input produces a ParsedFile, never an error.
func Parse(name, text string) *model.ParsedFile {
	parsed := model.NewParsedFile(name)

	// pending accumulates the comment block for the next key line.
	var pending []string

	for _, line := range strings.Split(text, "\n") {
		switch {
		case commentLine.MatchString(line):
			pending = append(pending, line)

		case line == "":
			pending = nil

		default:
			eq := strings.IndexByte(line, '=')
			if eq < 0 {
				// Malformed line: not stored, not a comment, and the
				// pending block stays armed for the next key line.
				continue
			}

			key := strings.TrimSpace(line[:eq])
			value := line[eq+1:]

			// Copy the pending block so later mutations of the accumulator
			// cannot reach into stored entries.
			var comment []string
			if len(pending) > 0 {
				comment = append([]string(nil), pending...)
			}

			parsed.Set(key, value, comment)
			pending = nil
		}
	}

	return parsed
}

// ParseFile reads the file at path and parses its contents. The path string
// as given becomes the ParsedFile's display label.
//
// Returns a CLIError with ExitUsageError when the file does not exist or
// cannot be read; parsing itself cannot fail.
func ParseFile(path string) (*model.ParsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitUsageError,
				fmt.Sprintf("file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(
			model.ExitUsageError,
			fmt.Sprintf("failed to read %s", path),
			err,
		)
	}

	return Parse(path, string(data)), nil
}
