package worker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgedFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestSweepRemovesExpiredReports(t *testing.T) {
	dir := t.TempDir()

	expired := writeAgedFile(t, dir, "echo-report-old.pdf", 10*time.Minute)
	fresh := writeAgedFile(t, dir, "echo-report-new.pdf", 10*time.Second)
	other := writeAgedFile(t, dir, "notes.txt", 10*time.Minute)

	w := NewReportCleanupWorker(dir, 5*time.Minute, time.Minute)
	removed := w.Sweep()

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, expired)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other)
}

func TestSweepIgnoresMissingDirectory(t *testing.T) {
	w := NewReportCleanupWorker(filepath.Join(t.TempDir(), "missing"), time.Minute, time.Minute)
	assert.Equal(t, 0, w.Sweep())
}

func TestSweepSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.pdf"), 0o755))

	w := NewReportCleanupWorker(dir, time.Nanosecond, time.Minute)
	assert.Equal(t, 0, w.Sweep())
	assert.DirExists(t, filepath.Join(dir, "archive.pdf"))
}

func TestNewReportCleanupWorkerDefaults(t *testing.T) {
	w := NewReportCleanupWorker("reports", 0, 0)
	assert.Equal(t, 5*time.Minute, w.retention)
	assert.Equal(t, time.Minute, w.interval)
}
