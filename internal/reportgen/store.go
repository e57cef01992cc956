package reportgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// ErrDocumentNotFound is returned for unknown or expired documents.
var ErrDocumentNotFound = fmt.Errorf("document not found")

// FileStore keeps generated PDFs on disk for a bounded retention window.
// Each document is tracked with a TTL; expiry unlinks the file. A restart
// loses the tracking entries, which is why the cleanup worker sweeps the
// directory independently.
type FileStore struct {
	dir  string
	docs *cache.Cache
}

// NewFileStore creates the reports directory if needed.
func NewFileStore(dir string, retention time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}
	if retention <= 0 {
		retention = 5 * time.Minute
	}

	cleanupInterval := retention / 2
	if cleanupInterval > time.Minute {
		cleanupInterval = time.Minute
	}

	docs := cache.New(retention, cleanupInterval)
	docs.OnEvicted(func(name string, v interface{}) {
		path, ok := v.(string)
		if !ok {
			return
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", name).Msg("failed to remove expired report")
		} else {
			log.Debug().Str("file", name).Msg("expired report removed")
		}
	})

	return &FileStore{dir: dir, docs: docs}, nil
}

// Put writes the PDF under a fresh opaque filename and starts its
// retention clock.
func (s *FileStore) Put(pdf []byte) (string, error) {
	name := fmt.Sprintf("echo-report-%s.pdf", uuid.New().String())
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	s.docs.SetDefault(name, path)
	return name, nil
}

// Resolve maps a filename back to its on-disk path while the document is
// still retained. The name is reduced to its base to keep lookups inside
// the reports directory.
func (s *FileStore) Resolve(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || !strings.HasSuffix(base, ".pdf") {
		return "", ErrDocumentNotFound
	}

	v, ok := s.docs.Get(base)
	if !ok {
		return "", ErrDocumentNotFound
	}
	path := v.(string)
	if _, err := os.Stat(path); err != nil {
		return "", ErrDocumentNotFound
	}
	return path, nil
}

// Flush drops all tracked documents, removing their files.
func (s *FileStore) Flush() {
	for name := range s.docs.Items() {
		s.docs.Delete(name)
	}
}
