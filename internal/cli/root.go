// Package cli implements the cobra-based CLI commands for env-helper.
//
// Each subcommand (compare, fmt) is defined in its own file within this
// package. This file defines the root command that serves as the parent
// for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/willsfidell/env-helper/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// outputFormat selects how results are rendered on stdout:
	// "text" (default), "json", or "yaml". Commands validate the value
	// and reject anything else as a usage error.
	outputFormat string

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by the
// compare and fmt subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "env-helper",
		Short: "Compare and canonically format .env configuration files",
		Long: `env-helper parses .env-style configuration sources (KEY=value lines with
#-prefixed comments), compares two sources by key set and values, and
reformats a single source into a canonical sorted, prefix-grouped layout.

A source is a file path, or a docker://<container> reference that reads a
container's environment through the Docker API.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text, JSON, or YAML per --output).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (compare.go, fmt.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewFmtCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; everything else — including errors cobra raises itself
// for unknown flags or wrong argument counts — is a usage error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitUsageError))
	}
}

// printError outputs an error message on stderr in the format selected by
// --output. stderr is used even in json/yaml mode because stdout is
// reserved for successful command output.
func printError(message string, underlying error) {
	format := SelectedOutputFormat()

	if format == model.OutputText {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
		return
	}

	inner := map[string]interface{}{
		"message": message,
	}
	if underlying != nil {
		inner["detail"] = underlying.Error()
	}
	errObj := map[string]interface{}{"error": inner}

	if format == model.OutputYAML {
		data, _ := yaml.Marshal(errObj)
		fmt.Fprint(os.Stderr, string(data))
		return
	}

	data, _ := json.MarshalIndent(errObj, "", "  ")
	fmt.Fprintln(os.Stderr, string(data))
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// SelectedOutputFormat returns the output format chosen via --output.
// Subcommands use this to decide their output format after validating the
// raw flag value; an unparseable value degrades to text here so error
// printing always works.
func SelectedOutputFormat() model.OutputFormat {
	format, err := model.ParseOutputFormat(outputFormat)
	if err != nil {
		return model.OutputText
	}
	return format
}
