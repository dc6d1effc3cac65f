package envfile

import (
	"sort"
	"strings"

	"github.com/willsfidell/env-helper/internal/model"
)

// Format renders a ParsedFile in canonical form:
//
//  1. Keys are sorted in ascending lexicographic byte order (not
//     locale-aware, not case-insensitive).
//  2. Keys sharing a prefix (the part before the first underscore) stay
//     adjacent; one blank line separates consecutive prefix groups. No
//     blank line precedes the first group.
//  3. An entry's comment block is emitted verbatim immediately above its
//     key=value line, in original relative order. Grouping adds no shared
//     headers — every commented key keeps its own block.
//  4. Values are emitted raw, exactly as stored.
//
// The result is joined with "\n" and carries no trailing newline; callers
// printing to stdout add one. Formatting an empty file yields "".
//
// Format is idempotent: parsing its output and formatting again reproduces
// the same text.
func Format(p *model.ParsedFile) string {
	keys := p.Keys()
	sort.Strings(keys)

	var lines []string
	prevPrefix := ""

	for i, key := range keys {
		entry, _ := p.Get(key)
		prefix := entry.Prefix()

		// Blank separator between prefix groups, never before the first.
		if i > 0 && prefix != prevPrefix {
			lines = append(lines, "")
		}

		lines = append(lines, entry.Comment...)
		lines = append(lines, entry.Key+"="+entry.Value)
		prevPrefix = prefix
	}

	return strings.Join(lines, "\n")
}
