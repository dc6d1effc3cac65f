// Package cli — compare.go implements the "env-helper compare" command.
//
// The compare command diffs two configuration sources by key set and
// values, and renders a three-section report: keys unique to the first
// source, keys unique to the second, and keys present in both but with
// different values. An optional .env-helper.jsonc config file supplies
// ignore rules that drop keys from the report.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/willsfidell/env-helper/internal/config"
	"github.com/willsfidell/env-helper/internal/envfile"
	"github.com/willsfidell/env-helper/internal/model"
)

// compareFlags holds the flag values for the compare command.
type compareFlags struct {
	configPath string // --config: explicit tool config file path
}

// NewCompareCommand creates the "compare" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCompareCommand() *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare <source1> <source2>",
		Short: "Compare two configuration sources",
		Long: `Compare two .env-style configuration sources and report their differences.

The report has three sections: keys unique to the first source, keys
unique to the second source, and keys present in both sources with
different values. Each section is sorted and renders even when empty.

A source is a file path or a docker://<container> reference.

Examples:
  env-helper compare .env .env.production
  env-helper compare .env docker://myapp
  env-helper compare --output json .env.staging .env.production`,

		// Exactly two sources are required.
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"Tool config file (default: .env-helper.jsonc in the working directory)")

	return cmd
}

// runCompare is the main logic function for the compare command.
// It resolves both sources, applies any configured ignore rules, and
// renders the difference report in the selected output format.
func runCompare(ctx context.Context, first, second string, flags *compareFlags) error {
	// Step 1: Validate the --output flag value.
	if _, err := model.ParseOutputFormat(outputFormat); err != nil {
		return model.WrapCLIError(model.ExitUsageError, "invalid --output value", err)
	}

	// Step 2: Load the tool configuration. An explicit --config path wins;
	// otherwise the working directory is probed; otherwise defaults apply.
	cfg, err := loadToolConfig(flags.configPath)
	if err != nil {
		return err
	}

	// Step 3: Resolve both sources into parsed files.
	a, err := resolveSource(ctx, first)
	if err != nil {
		return err
	}
	VerboseLog("Parsed %s: %d entries", a.Name, a.Len())

	b, err := resolveSource(ctx, second)
	if err != nil {
		return err
	}
	VerboseLog("Parsed %s: %d entries", b.Name, b.Len())

	// Step 4: Apply ignore rules from the configuration. Rules only affect
	// comparison; the sources themselves are never modified.
	if cfg.HasRules() {
		beforeA := a.Len()
		beforeB := b.Len()
		a = excludeIgnored(a, cfg)
		b = excludeIgnored(b, cfg)
		VerboseLog("Ignore rules dropped %d entries", (beforeA-a.Len())+(beforeB-b.Len()))
	}

	// Step 5: Compute and render the report.
	report := envfile.Compare(a, b)
	printCompareResult(report)

	return nil
}

// loadToolConfig resolves the tool configuration for the compare command.
// When explicitPath is empty the working directory is probed for a config
// file; when none exists the zero-value configuration (no ignore rules)
// applies.
func loadToolConfig(explicitPath string) (*config.Config, error) {
	if explicitPath != "" {
		VerboseLog("Loading config file: %s", explicitPath)
		return config.Load(explicitPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		// No working directory means nothing to probe; run with defaults.
		return &config.Config{}, nil
	}

	path, ok := config.Find(cwd)
	if !ok {
		return &config.Config{}, nil
	}

	VerboseLog("Loading config file: %s", path)
	return config.Load(path)
}

// excludeIgnored returns a copy of p without the keys the configuration
// ignores. The input is left untouched; surviving entries keep their
// values and comment blocks.
func excludeIgnored(p *model.ParsedFile, cfg *config.Config) *model.ParsedFile {
	out := model.NewParsedFile(p.Name)
	for _, key := range p.Keys() {
		if cfg.IsIgnored(key) {
			continue
		}
		entry, _ := p.Get(key)
		out.Set(entry.Key, entry.Value, entry.Comment)
	}
	return out
}

// printCompareResult renders the report in the format selected by --output.
func printCompareResult(report *model.Report) {
	switch SelectedOutputFormat() {
	case model.OutputJSON:
		printCompareResultJSON(report)
	case model.OutputYAML:
		printCompareResultYAML(report)
	default:
		fmt.Print(FormatCompareReport(report))
	}
}

// printCompareResultJSON outputs the report as structured JSON for
// programmatic consumption.
func printCompareResultJSON(report *model.Report) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// printCompareResultYAML outputs the report as YAML.
func printCompareResultYAML(report *model.Report) {
	data, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting YAML output: %v\n", err)
		return
	}
	fmt.Print(string(data))
}

// FormatCompareReport renders the plain-text difference report.
//
// The report always contains all three section headers, even when a
// section is empty. Keys within a section appear one per line; value
// differences show the key followed by both values, indented and labeled
// with their source names.
//
// This function is exported for testing purposes.
func FormatCompareReport(r *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Keys unique to %s ===\n", r.FirstLabel)
	for _, key := range r.UniqueToFirst {
		b.WriteString(key)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n=== Keys unique to %s ===\n", r.SecondLabel)
	for _, key := range r.UniqueToSecond {
		b.WriteString(key)
		b.WriteByte('\n')
	}

	b.WriteString("\n=== Keys with different values ===\n")
	for _, diff := range r.ValueDiffs {
		fmt.Fprintf(&b, "%s:\n", diff.Key)
		fmt.Fprintf(&b, "  %s: %s\n", r.FirstLabel, diff.FirstValue)
		fmt.Fprintf(&b, "  %s: %s\n", r.SecondLabel, diff.SecondValue)
	}

	return b.String()
}
