// Package cache implements the transform result store used to skip
// recompilation of unchanged inputs.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is the cache file location relative to the working directory.
const DefaultPath = ".recast/cache.json"

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a flat JSON file keyed by
// derived cache keys.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.TransformResult
}

// NewStore creates a store backed by the file at the given path. An empty
// path uses DefaultPath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.TransformResult),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read transform cache")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal transform cache")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal transform cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for transform cache")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write transform cache")
	}

	return nil
}

// Get retrieves the cached result for a derived key. A miss returns nil
// without error.
func (s *Store) Get(key string) (*domain.TransformResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

// Put stores the result under the derived key.
func (s *Store) Put(key string, res domain.TransformResult) error {
	s.mu.Lock()
	s.cache[key] = res
	s.mu.Unlock()

	return s.save()
}
