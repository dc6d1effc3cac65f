package docker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectUnixSocket verifies that an existing candidate path is returned
// as a unix:// host URI.
func TestDetectUnixSocket(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.sock")
	present := filepath.Join(dir, "docker.sock")
	require.NoError(t, os.WriteFile(present, []byte{}, 0600))

	host, err := detectUnixSocket([]string{missing, present})
	require.NoError(t, err)
	assert.Equal(t, "unix://"+present, host)
}

// TestDetectUnixSocket_PriorityOrder verifies that earlier paths take
// precedence when several candidates exist.
func TestDetectUnixSocket_PriorityOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.sock")
	second := filepath.Join(dir, "second.sock")
	require.NoError(t, os.WriteFile(first, []byte{}, 0600))
	require.NoError(t, os.WriteFile(second, []byte{}, 0600))

	host, err := detectUnixSocket([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, "unix://"+first, host)
}

// TestDetectUnixSocket_NotFound verifies the error when no candidate path
// exists on the filesystem.
func TestDetectUnixSocket_NotFound(t *testing.T) {
	_, err := detectUnixSocket([]string{filepath.Join(t.TempDir(), "nope.sock")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Docker socket not found")
}
