package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// FileCache persists layout and artifact entries as JSON files under a root
// directory, sharded by key hash so large rosters don't pile thousands of
// entries into one directory. Expiry is checked lazily on read; expired and
// unreadable entries are removed and reported as misses.
type FileCache struct {
	root string
}

// NewFileCache opens a file cache rooted at dir, creating the directory if
// it does not exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{root: dir}, nil
}

// entry is the on-disk envelope around a cached payload. A zero Expires
// means the entry never expires.
type entry struct {
	Payload []byte    `json:"payload"`
	Expires time.Time `json:"expires,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return !e.Expires.IsZero() && now.After(e.Expires)
}

func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil || e.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Payload, true, nil
}

func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{Payload: data}
	if ttl > 0 {
		e.Expires = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; every operation leaves the directory consistent.
func (c *FileCache) Close() error { return nil }

// entryPath shards entries into subdirectories by the leading hash bytes.
// Layout and artifact keys embed colons, so hashing also keeps the
// filenames filesystem-safe.
func (c *FileCache) entryPath(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.root, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
