package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willsfidell/env-helper/internal/model"
)

// writeConfig writes content to name inside a fresh temp directory and
// returns both the directory and the full path.
func writeConfig(t *testing.T, name, content string) (dir, path string) {
	t.Helper()

	dir = t.TempDir()
	path = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return dir, path
}

// --- Load tests ---

// TestLoad verifies parsing a JSONC config file, including comment
// stripping and trailing commas.
func TestLoad(t *testing.T) {
	content := `{
	// Keys that differ on every machine.
	"ignoreKeys": ["HOSTNAME", "PWD"],

	/* Runtime-injected prefixes. */
	"ignorePrefixes": ["KUBERNETES_", "npm_"],
}`
	_, path := writeConfig(t, ".env-helper.jsonc", content)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"HOSTNAME", "PWD"}, cfg.IgnoreKeys)
	assert.Equal(t, []string{"KUBERNETES_", "npm_"}, cfg.IgnorePrefixes)
}

// TestLoad_PlainJSON verifies that plain JSON without comments also loads.
func TestLoad_PlainJSON(t *testing.T) {
	_, path := writeConfig(t, ".env-helper.json", `{"ignoreKeys": ["HOSTNAME"]}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"HOSTNAME"}, cfg.IgnoreKeys)
	assert.Empty(t, cfg.IgnorePrefixes)
}

// TestLoad_NotFound verifies that a missing config file produces a CLIError
// with the config-error exit code.
func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ".env-helper.jsonc"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "error should be a *model.CLIError")
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "config file not found")
}

// TestLoad_InvalidJSON verifies that malformed content is rejected with the
// config-error exit code.
func TestLoad_InvalidJSON(t *testing.T) {
	_, path := writeConfig(t, ".env-helper.jsonc", `{"ignoreKeys": [`)

	_, err := Load(path)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// --- Find tests ---

// TestFind verifies discovery of config files in priority order:
// .env-helper.jsonc wins over .env-helper.json.
func TestFind(t *testing.T) {
	t.Run("jsonc preferred over json", func(t *testing.T) {
		dir := t.TempDir()
		jsoncPath := filepath.Join(dir, ".env-helper.jsonc")
		jsonPath := filepath.Join(dir, ".env-helper.json")
		require.NoError(t, os.WriteFile(jsoncPath, []byte(`{}`), 0644))
		require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0644))

		path, ok := Find(dir)
		assert.True(t, ok)
		assert.Equal(t, jsoncPath, path)
	})

	t.Run("json fallback", func(t *testing.T) {
		dir, jsonPath := writeConfig(t, ".env-helper.json", `{}`)

		path, ok := Find(dir)
		assert.True(t, ok)
		assert.Equal(t, jsonPath, path)
	})

	t.Run("nothing found", func(t *testing.T) {
		path, ok := Find(t.TempDir())
		assert.False(t, ok)
		assert.Empty(t, path)
	})
}

// --- IsIgnored tests ---

// TestIsIgnored verifies exact-key and prefix matching.
func TestIsIgnored(t *testing.T) {
	cfg := &Config{
		IgnoreKeys:     []string{"HOSTNAME", "PWD"},
		IgnorePrefixes: []string{"KUBERNETES_"},
	}

	tests := []struct {
		key      string
		expected bool
	}{
		{"HOSTNAME", true},             // exact match
		{"PWD", true},                  // exact match
		{"KUBERNETES_SERVICE", true},   // prefix match
		{"KUBERNETES_PORT_443", true},  // prefix match
		{"HOST", false},                // no partial exact match
		{"DB_HOST", false},             // unrelated key
		{"KUBERNETES", false},          // shorter than the prefix
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.IsIgnored(tt.key))
		})
	}
}

// TestIsIgnored_EmptyPrefix verifies that an empty prefix in the config is
// inert instead of matching every key.
func TestIsIgnored_EmptyPrefix(t *testing.T) {
	cfg := &Config{IgnorePrefixes: []string{""}}

	assert.False(t, cfg.IsIgnored("DB_HOST"))
	assert.False(t, cfg.IsIgnored(""))
}

// TestIsIgnored_ZeroValue verifies that the zero-value Config ignores
// nothing.
func TestIsIgnored_ZeroValue(t *testing.T) {
	cfg := &Config{}

	assert.False(t, cfg.IsIgnored("ANY_KEY"))
	assert.False(t, cfg.HasRules())
}

// TestHasRules verifies rule presence detection for both rule kinds.
func TestHasRules(t *testing.T) {
	assert.True(t, (&Config{IgnoreKeys: []string{"A"}}).HasRules())
	assert.True(t, (&Config{IgnorePrefixes: []string{"B_"}}).HasRules())
	assert.False(t, (&Config{}).HasRules())
}
