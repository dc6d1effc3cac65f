// Package cli — fmt.go implements the "env-helper fmt" command.
//
// The fmt command reformats a single configuration source into the
// canonical layout: keys sorted, grouped by prefix with blank lines
// between groups, comment blocks kept attached to their variables.
// The result goes to stdout; the source is never modified.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/willsfidell/env-helper/internal/envfile"
	"github.com/willsfidell/env-helper/internal/model"
)

// NewFmtCommand creates the "fmt" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewFmtCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fmt <source>",
		Aliases: []string{"format"},
		Short:   "Canonically format a configuration source",
		Long: `Reformat a .env-style configuration source into canonical form.

Keys are sorted lexicographically and grouped by prefix (the part of the
key before the first underscore), with a blank line between groups.
Comment blocks stay attached to their variables. Lines without an "="
are dropped. The source itself is never modified; the canonical form is
written to stdout.

A source is a file path or a docker://<container> reference.

Examples:
  env-helper fmt .env
  env-helper fmt docker://myapp
  env-helper fmt --output json .env`,

		// Exactly one source is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd.Context(), args[0])
		},
	}

	return cmd
}

// runFmt is the main logic function for the fmt command.
// It resolves the source and renders its canonical form in the selected
// output format.
func runFmt(ctx context.Context, source string) error {
	// Step 1: Validate the --output flag value.
	if _, err := model.ParseOutputFormat(outputFormat); err != nil {
		return model.WrapCLIError(model.ExitUsageError, "invalid --output value", err)
	}

	// Step 2: Resolve the source into a parsed file.
	parsed, err := resolveSource(ctx, source)
	if err != nil {
		return err
	}
	VerboseLog("Parsed %s: %d entries", parsed.Name, parsed.Len())

	// Step 3: Render in the selected output format.
	printFmtResult(parsed)

	return nil
}

// fmtResult is the structured payload for json/yaml output: the source
// name plus its entries in canonical order.
type fmtResult struct {
	Name    string        `json:"name" yaml:"name"`
	Entries []model.Entry `json:"entries" yaml:"entries"`
}

// printFmtResult renders the parsed source in the format selected by
// --output. Text mode prints the canonical file layout; json and yaml
// modes print the structured entry list instead.
func printFmtResult(parsed *model.ParsedFile) {
	switch SelectedOutputFormat() {
	case model.OutputJSON:
		printFmtResultJSON(parsed)
	case model.OutputYAML:
		printFmtResultYAML(parsed)
	default:
		fmt.Println(envfile.Format(parsed))
	}
}

// sortedEntries returns the source's entries in canonical order
// (keys ascending), matching the order the text formatter uses.
func sortedEntries(parsed *model.ParsedFile) []model.Entry {
	keys := parsed.Keys()
	sort.Strings(keys)

	entries := make([]model.Entry, 0, len(keys))
	for _, key := range keys {
		entry, _ := parsed.Get(key)
		entries = append(entries, entry)
	}
	return entries
}

// printFmtResultJSON outputs the canonical entry list as structured JSON.
func printFmtResultJSON(parsed *model.ParsedFile) {
	result := fmtResult{Name: parsed.Name, Entries: sortedEntries(parsed)}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// printFmtResultYAML outputs the canonical entry list as YAML.
func printFmtResultYAML(parsed *model.ParsedFile) {
	result := fmtResult{Name: parsed.Name, Entries: sortedEntries(parsed)}

	data, err := yaml.Marshal(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting YAML output: %v\n", err)
		return
	}
	fmt.Print(string(data))
}
