package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ReportCleanupWorker removes rendered documents left on disk past their
// retention window, including orphans from previous runs.
type ReportCleanupWorker struct {
	dir       string
	retention time.Duration
	interval  time.Duration
}

func NewReportCleanupWorker(dir string, retention, interval time.Duration) *ReportCleanupWorker {
	if retention <= 0 {
		retention = 5 * time.Minute
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReportCleanupWorker{
		dir:       dir,
		retention: retention,
		interval:  interval,
	}
}

// Start runs the cleanup loop until the context is cancelled
func (w *ReportCleanupWorker) Start(ctx context.Context) {
	log.Info().
		Str("dir", w.dir).
		Dur("retention", w.retention).
		Dur("interval", w.interval).
		Msg("starting report cleanup worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sweep()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("report cleanup worker stopped")
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep removes expired PDF files and returns the number removed
func (w *ReportCleanupWorker) Sweep() int {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("dir", w.dir).Msg("failed to read reports directory")
		}
		return 0
	}

	cutoff := time.Now().Add(-w.retention)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(w.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				log.Warn().Err(err).Str("file", path).Msg("failed to remove expired report")
			}
			continue
		}

		removed++
		log.Debug().Str("file", entry.Name()).Msg("removed expired report")
	}

	if removed > 0 {
		log.Info().Int("removed", removed).Msg("report cleanup sweep completed")
	}
	return removed
}
