// Package config loads the optional env-helper tool configuration.
//
// The configuration file uses JSONC (JSON with Comments), so this package
// uses github.com/tidwall/jsonc to strip comments before parsing with the
// standard encoding/json library. Configuration is entirely optional: when
// no file exists, the zero-value Config applies and nothing is ignored.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/willsfidell/env-helper/internal/model"
)

// Config holds the tool configuration loaded from .env-helper.jsonc.
// The zero value is valid and ignores nothing.
//
// Ignore rules apply to compare reports only — fmt output always contains
// every parsed key, keeping formatting deterministic and idempotent.
type Config struct {
	// IgnoreKeys lists keys excluded from compare reports (exact match).
	// Useful for machine-local noise such as HOSTNAME or PWD when
	// comparing against a container environment.
	IgnoreKeys []string `json:"ignoreKeys"`

	// IgnorePrefixes lists key prefixes excluded from compare reports.
	// A key matching any prefix is dropped from all three sections.
	IgnorePrefixes []string `json:"ignorePrefixes"`
}

// Load reads a configuration file, strips JSONC comments, and parses it
// into a Config.
//
// The function uses github.com/tidwall/jsonc to handle JSONC (comments and
// trailing commas), then the standard encoding/json for parsing. Unknown
// fields are ignored silently.
//
// Returns a CLIError with ExitConfigError if the file is missing,
// unreadable, or not valid JSONC.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path),
			err,
		)
	}

	// Strip JSONC comments (// and /* */) and trailing commas before
	// handing the bytes to encoding/json.
	cleanJSON := jsonc.ToJSON(data)

	var cfg Config
	if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path),
			err,
		)
	}

	return &cfg, nil
}

// Find searches dir for a configuration file in the standard names,
// in priority order:
//
//  1. <dir>/.env-helper.jsonc (preferred)
//  2. <dir>/.env-helper.json
//
// Returns the path of the first file that exists and true, or "" and false
// when neither is present. Absence of a config file is not an error.
func Find(dir string) (string, bool) {
	candidates := []string{
		filepath.Join(dir, ".env-helper.jsonc"),
		filepath.Join(dir, ".env-helper.json"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// IsIgnored reports whether key is excluded by the configuration, either
// by exact match in IgnoreKeys or by any prefix in IgnorePrefixes.
func (c *Config) IsIgnored(key string) bool {
	for _, k := range c.IgnoreKeys {
		if key == k {
			return true
		}
	}
	for _, p := range c.IgnorePrefixes {
		// An empty prefix would match every key; treat it as inert rather
		// than letting a sloppy config file blank out whole reports.
		if p != "" && strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// HasRules reports whether the configuration excludes anything at all.
// Callers use this to skip the filtering pass in the common empty case.
func (c *Config) HasRules() bool {
	return len(c.IgnoreKeys) > 0 || len(c.IgnorePrefixes) > 0
}
