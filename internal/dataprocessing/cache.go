package dataprocessing

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoaderFunc loads one workbook into typed records.
type LoaderFunc[T any] func(path string) ([]T, error)

// Cache memoizes loaded workbooks process-wide, keyed by path. There is no
// file-modification check: once a path is loaded it is never re-read until
// the process restarts, matching the original dashboards (a known staleness
// quirk). Concurrent first loads of the same path are collapsed into one
// read via singleflight. Cached slices are shared across requests and must
// be treated as immutable; every downstream stage copies.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string][]T
	group   singleflight.Group
	logger  *slog.Logger
}

// NewCache creates an empty loader cache.
func NewCache[T any](logger *slog.Logger) *Cache[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache[T]{
		entries: make(map[string][]T),
		logger:  logger,
	}
}

// Load returns the cached records for path, loading them on first use.
// A failed load is not cached, so a dashboard hit after the file appears
// will succeed.
func (c *Cache[T]) Load(ctx context.Context, path string, load LoaderFunc[T]) ([]T, error) {
	c.mu.RLock()
	cached, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(path, func() (interface{}, error) {
		// Re-check under the flight: another caller may have filled the
		// entry between the RUnlock and Do.
		c.mu.RLock()
		cached, ok := c.entries[path]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		records, err := load(path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[path] = records
		c.mu.Unlock()

		c.logger.InfoContext(ctx, "workbook loaded and cached",
			slog.String("path", path),
			slog.Int("records", len(records)))

		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]T), nil
}

// Len returns the number of cached paths.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
