// Package store implements a durable, collection-oriented JSON document
// store. Each collection is a single file on disk; writes replace the
// whole file atomically via a sibling temp file and rename, and every
// read-modify-write runs under a per-collection mutex so concurrent
// writers cannot lose updates.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/flexmobile/shop/internal/infrastructure/logger"
)

// Store maps collection names to JSON documents on stable storage.
// It exclusively owns the files under its base directory.
type Store struct {
	dir    string
	logger *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dir, creating the directory if needed
func New(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	return &Store{
		dir:    dir,
		logger: log.WithComponent("store"),
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the base directory the store writes under
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// collectionLock returns the mutex for a collection, creating it on
// first use. Locks are never removed; the set of collections is small
// and fixed for the process lifetime.
func (s *Store) collectionLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Exists reports whether the collection has a file on disk
func (s *Store) Exists(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

// Load reads a collection document into dst. A missing file, an empty
// file, or unparsable contents leave dst at the caller's default and
// are logged as anomalies, never returned as errors: callers must not
// crash on a store read.
func (s *Store) Load(collection string, dst interface{}) error {
	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warnw("Failed to read collection, using default",
				"collection", collection, "error", err)
		}
		return nil
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warnw("Failed to parse collection, using default",
			"collection", collection, "error", err)
		return nil
	}

	return nil
}

// Save serializes doc and atomically replaces the collection file.
// The new content is written to a sibling temp file which is then
// renamed over the original, so a concurrent reader observes either
// the complete old document or the complete new one, never a partial
// write. On failure the prior file is left intact.
func (s *Store) Save(collection string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}

	target := s.path(collection)
	tmp := target + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", collection, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write collection %s: %w", collection, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync collection %s: %w", collection, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file for %s: %w", collection, err)
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace collection %s: %w", collection, err)
	}

	return nil
}

// Update runs a read-modify-write cycle on a collection under its
// exclusive lock. def is the document default used when the collection
// is missing or unreadable; fn receives the loaded document and returns
// the document to persist. Two Updates on the same collection
// serialize; Updates on different collections never block each other.
// If fn returns an error nothing is written.
func Update[T any](s *Store, collection string, def T, fn func(T) (T, error)) (T, error) {
	l := s.collectionLock(collection)
	l.Lock()
	defer l.Unlock()

	doc := def
	if err := s.Load(collection, &doc); err != nil {
		return def, err
	}

	out, err := fn(doc)
	if err != nil {
		return def, err
	}

	if err := s.Save(collection, out); err != nil {
		return def, err
	}

	return out, nil
}
