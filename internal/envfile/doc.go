// Package envfile is the core engine of the env-helper CLI: it parses
// .env-style text into ordered entries, renders entries back in a
// canonical grouped layout, and diffs two parsed sources.
//
// The three operations are pure functions over model.ParsedFile:
//
//   - Parse / ParseFile: single-pass line parser. Comment blocks ("#"
//     lines) attach to the next key line; an exactly-empty line discards a
//     pending block; lines without "=" are dropped silently.
//   - Format: keys sorted in byte order, grouped by the prefix before the
//     first underscore, blank lines between groups, comments kept verbatim
//     above their entries. Idempotent.
//   - Compare: three-section report — keys unique to either source and
//     keys whose values differ — every section sorted ascending.
//
// Parsing and comparison are total: malformed input degrades to skipped
// lines, never to an error. The only failure the package can produce is an
// unreadable file in ParseFile.
package envfile
