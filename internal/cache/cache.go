// Package cache buffers feed responses in a per-day keyed store on disk.
//
// The file is read once per process, served from memory after that, and
// flushed only when dirty. There is no inter-process locking: writes are
// daily-granularity and effectively single-writer, so last writer wins.
// Known race if two pipelines run concurrently against the same day.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/abelbrown/radar/internal/feeds"
	"github.com/abelbrown/radar/internal/logging"
)

// Cache is a key -> item-list store backed by one JSON file.
type Cache struct {
	path   string
	loaded bool
	dirty  bool
	data   map[string][]feeds.Item
}

// New creates a cache backed by the given file. Nothing is read until
// the first Get or Put.
func New(path string) *Cache {
	return &Cache{
		path: path,
		data: map[string][]feeds.Item{},
	}
}

// DayFile returns the conventional cache path for a date under dir.
func DayFile(dir, date string) string {
	return filepath.Join(dir, date+".feedcache.json")
}

// Get returns the cached items for key, or nil and false on a miss.
// The returned slice is a copy; callers may mutate it.
func (c *Cache) Get(key string) ([]feeds.Item, bool) {
	c.loadOnce()
	hit, ok := c.data[key]
	if !ok {
		return nil, false
	}
	out := make([]feeds.Item, len(hit))
	copy(out, hit)
	return out, true
}

// Put stores items under key and marks the cache dirty.
func (c *Cache) Put(key string, items []feeds.Item) {
	c.loadOnce()
	stored := make([]feeds.Item, len(items))
	copy(stored, items)
	c.data[key] = stored
	c.dirty = true
}

// Flush writes the cache to disk if anything changed since load.
func (c *Cache) Flush() error {
	if !c.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

// loadOnce reads the backing file on first use. A missing or broken
// file just starts the cache empty.
func (c *Cache) loadOnce() {
	if c.loaded {
		return
	}
	c.loaded = true

	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	var parsed map[string][]feeds.Item
	if err := json.Unmarshal(data, &parsed); err != nil {
		logging.Warn("Feed cache read failed", "path", c.path, "error", err)
		return
	}
	c.data = parsed
	if c.data == nil {
		c.data = map[string][]feeds.Item{}
	}
}
