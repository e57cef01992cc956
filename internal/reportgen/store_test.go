package reportgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorePutAndResolve(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, time.Minute)
	require.NoError(t, err)

	name, err := store.Put([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "echo-report-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	path, err := store.Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, name), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestFileStoreUniqueNames(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), time.Minute)
	require.NoError(t, err)

	first, err := store.Put([]byte("a"))
	require.NoError(t, err)
	second, err := store.Put([]byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFileStoreResolveRejectsBadNames(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), time.Minute)
	require.NoError(t, err)

	for _, name := range []string{
		"../../etc/passwd",
		"sub/echo-report-x.pdf",
		"echo-report-x.txt",
		"unknown.pdf",
		"",
	} {
		_, err := store.Resolve(name)
		assert.ErrorIs(t, err, ErrDocumentNotFound, "name %q", name)
	}
}

func TestFileStoreExpiryRemovesFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, 30*time.Millisecond)
	require.NoError(t, err)

	name, err := store.Put([]byte("short lived"))
	require.NoError(t, err)
	path := filepath.Join(dir, name)

	require.Eventually(t, func() bool {
		if _, err := store.Resolve(name); err == nil {
			return false
		}
		_, statErr := os.Stat(path)
		return os.IsNotExist(statErr)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFileStoreFlush(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, time.Minute)
	require.NoError(t, err)

	name, err := store.Put([]byte("flushed"))
	require.NoError(t, err)

	store.Flush()

	_, err = store.Resolve(name)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))
}
