package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageKeyDistinct(t *testing.T) {
	// Identical original names in a tight loop (same millisecond) must
	// still produce distinct keys.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := StorageKey("report.pdf")
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestStorageKeyKeepsOriginalName(t *testing.T) {
	key := StorageKey("report.pdf")
	assert.True(t, strings.HasSuffix(key, "-report.pdf"))
}

func TestStorageKeyStripsPath(t *testing.T) {
	key := StorageKey("../../etc/passwd")
	assert.False(t, strings.Contains(key, "/"))
	assert.True(t, strings.HasSuffix(key, "-passwd"))
}

func TestInitUploadsDir(t *testing.T) {
	dir := t.TempDir() + "/nested/uploads"
	t.Setenv("UPLOAD_DIR", dir)
	require.NoError(t, InitUploadsDir())
	assert.Equal(t, dir, UploadsDir)

	// Re-running against an existing directory is fine.
	require.NoError(t, InitUploadsDir())
}
