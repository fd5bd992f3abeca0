package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// diskCache is a keyed JSON file cache for condition samples. Entries are
// never expired; the file is read once at construction and written back via
// Flush after a historical batch has been processed. Concurrent writers are
// not supported (last writer wins).
type diskCache[T any] struct {
	path    string
	entries map[string]T
	dirty   bool
	logger  *logrus.Logger
}

func newDiskCache[T any](path string, logger *logrus.Logger) *diskCache[T] {
	c := &diskCache[T]{
		path:    path,
		entries: make(map[string]T),
		logger:  logger,
	}
	c.load()
	return c
}

// load reads the cache file. A missing or corrupt file yields an empty cache.
func (c *diskCache[T]) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{
				"path":  c.path,
				"error": err.Error(),
			}).Warn("Ignoring corrupt cache file")
		}
		c.entries = make(map[string]T)
	}
}

func (c *diskCache[T]) get(key string) (T, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *diskCache[T]) put(key string, v T) {
	c.entries[key] = v
	c.dirty = true
}

// flush writes the cache back to disk if anything changed.
func (c *diskCache[T]) flush() error {
	if !c.dirty {
		return nil
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create cache dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write cache %s: %w", c.path, err)
	}
	c.dirty = false
	return nil
}
