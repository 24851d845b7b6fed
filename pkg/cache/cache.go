// Package cache provides a small byte-level cache used to memoize assembled
// chart layouts and rendered artifacts between runs.
//
// Two implementations exist: [FileCache] for the CLI (entries as files under
// a directory, with TTL metadata) and [NullCache] to disable caching. Keys
// are content hashes of the roster plus the layout options, so any change to
// either invalidates naturally.
package cache

import (
	"context"
	"time"
)

// Default TTLs for cached artifacts.
const (
	// TTLLayout is how long assembled layouts stay valid. Layouts are
	// pure functions of their inputs, so the TTL exists only to bound
	// disk growth.
	TTLLayout = 30 * 24 * time.Hour

	// TTLArtifact is how long rendered outputs stay valid.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the minimal byte-level caching interface.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKey builds the cache key for an assembled layout from the roster
// content hash and the serialized options.
func LayoutKey(rosterHash string, optsHash string) string {
	return "layout:" + rosterHash + ":" + optsHash
}

// ArtifactKey builds the cache key for a rendered artifact.
func ArtifactKey(layoutHash string, format string) string {
	return "artifact:" + layoutHash + ":" + format
}
