package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntry_Prefix verifies the grouping prefix derived from a key:
// the substring before the first underscore, or the whole key when it
// contains none.
func TestEntry_Prefix(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"DB_HOST", "DB"},
		{"A_B_C", "A"},         // first underscore wins
		{"VERSION", "VERSION"}, // no underscore: whole key
		{"_HIDDEN", ""},        // leading underscore: empty prefix
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			entry := Entry{Key: tt.key}
			assert.Equal(t, tt.expected, entry.Prefix())
		})
	}
}

// TestParsedFile_Set verifies storage behavior:
// - New keys append to the iteration order
// - Redefinition replaces the whole entry (value and comment)
// - Redefined keys keep their first-insertion position
func TestParsedFile_Set(t *testing.T) {
	t.Run("stores and retrieves entries", func(t *testing.T) {
		p := NewParsedFile(".env")
		p.Set("DB_HOST", "localhost", []string{"# Database settings"})

		entry, ok := p.Get("DB_HOST")
		require.True(t, ok)
		assert.Equal(t, "DB_HOST", entry.Key)
		assert.Equal(t, "localhost", entry.Value)
		assert.Equal(t, []string{"# Database settings"}, entry.Comment)

		assert.True(t, p.Has("DB_HOST"))
		assert.False(t, p.Has("DB_PORT"))
		assert.Equal(t, 1, p.Len())
	})

	t.Run("missing key", func(t *testing.T) {
		p := NewParsedFile(".env")
		_, ok := p.Get("MISSING")
		assert.False(t, ok)
		assert.False(t, p.Has("MISSING"))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("redefinition replaces whole entry", func(t *testing.T) {
		p := NewParsedFile(".env")
		p.Set("APP_NAME", "first", []string{"# original comment"})
		p.Set("APP_NAME", "second", nil)

		entry, ok := p.Get("APP_NAME")
		require.True(t, ok)
		assert.Equal(t, "second", entry.Value)
		// Redefinition without a comment drops the earlier comment.
		assert.Nil(t, entry.Comment)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("redefined key keeps original position", func(t *testing.T) {
		p := NewParsedFile(".env")
		p.Set("APP_NAME", "first", nil)
		p.Set("APP_ENV", "production", nil)
		p.Set("APP_NAME", "second", nil)

		assert.Equal(t, []string{"APP_NAME", "APP_ENV"}, p.Keys())
	})
}

// TestParsedFile_Keys verifies that Keys returns an independent copy in
// first-insertion order.
func TestParsedFile_Keys(t *testing.T) {
	p := NewParsedFile(".env")
	p.Set("B_KEY", "1", nil)
	p.Set("A_KEY", "2", nil)

	keys := p.Keys()
	assert.Equal(t, []string{"B_KEY", "A_KEY"}, keys)

	// Mutating the returned slice must not affect the ParsedFile.
	keys[0] = "MUTATED"
	assert.Equal(t, []string{"B_KEY", "A_KEY"}, p.Keys())
}

// TestReport_Empty verifies that Empty reports true only when all three
// report sections contain nothing.
func TestReport_Empty(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected bool
	}{
		{
			name: "all sections empty",
			report: Report{
				UniqueToFirst:  []string{},
				UniqueToSecond: []string{},
				ValueDiffs:     []ValueDiff{},
			},
			expected: true,
		},
		{
			name: "key unique to first source",
			report: Report{
				UniqueToFirst:  []string{"APP_DEBUG"},
				UniqueToSecond: []string{},
				ValueDiffs:     []ValueDiff{},
			},
			expected: false,
		},
		{
			name: "key unique to second source",
			report: Report{
				UniqueToFirst:  []string{},
				UniqueToSecond: []string{"EXTRA_VAR"},
				ValueDiffs:     []ValueDiff{},
			},
			expected: false,
		},
		{
			name: "value difference",
			report: Report{
				UniqueToFirst:  []string{},
				UniqueToSecond: []string{},
				ValueDiffs: []ValueDiff{
					{Key: "DB_HOST", FirstValue: "localhost", SecondValue: "127.0.0.1"},
				},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.report.Empty())
		})
	}
}

// TestOutputFormat_String verifies that OutputFormat values produce the
// expected string representations for CLI output.
func TestOutputFormat_String(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{OutputText, "text"},
		{OutputJSON, "json"},
		{OutputYAML, "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

// TestOutputFormat_IsValid checks that only defined format values pass validation.
func TestOutputFormat_IsValid(t *testing.T) {
	assert.True(t, OutputText.IsValid())
	assert.True(t, OutputJSON.IsValid())
	assert.True(t, OutputYAML.IsValid())
	assert.False(t, OutputFormat("xml").IsValid())
	assert.False(t, OutputFormat("").IsValid())
}

// TestParseOutputFormat verifies string-to-format conversion,
// including case normalization and error cases.
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		hasError bool
	}{
		{"text", OutputText, false},
		{"json", OutputJSON, false},
		{"yaml", OutputYAML, false},
		{"JSON", OutputJSON, false}, // case insensitive
		{"Text", OutputText, false}, // case insensitive
		{"xml", "", true},           // unknown value
		{"", "", true},              // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOutputFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitUsageError, "file not found: .env")
		assert.Equal(t, ExitUsageError, err.Code)
		assert.Equal(t, "file not found: .env", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitConfigError, "failed to read config file", inner)
		assert.Equal(t, ExitConfigError, err.Code)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, inner, err.Unwrap())
	})

	// Verify errors.Is works with unwrapped errors (Go 1.13+ error chain).
	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := WrapCLIError(ExitDockerUnavailable, "Docker daemon is not responding", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
