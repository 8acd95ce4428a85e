// Package cache defines the string-keyed byte cache used for derived views
// (featured speakers, announcements) and provides Redis and in-memory
// implementations. Entries are disposable: losing one is a cache miss, not
// data loss.
package cache

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when the key has no entry.
var ErrCacheMiss = errors.New("cache: miss")

// Cache is a process-external key-value store with no expiry semantics.
type Cache interface {
	// Get returns the value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value for key wholesale.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
