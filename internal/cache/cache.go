// Package cache stores exported artifacts on disk keyed by script content.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion must be incremented when Entry changes.
const schemaVersion uint16 = 1

// ErrTooLarge indicates an artifact above the cache size limit.
var ErrTooLarge = errors.New("artifact too large for cache")

// Digest is a cache key.
type Digest [sha256.Size]byte

// String returns the hex form of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Key hashes parts into a digest. Parts are length-prefixed, so ("ab", "c")
// and ("a", "bc") differ.
func Key(parts ...[]byte) Digest {
	h := sha256.New()
	var n [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(n[:], safecast.MustConv[uint64](len(p)))
		_, _ = h.Write(n[:])
		_, _ = h.Write(p)
	}

	var d Digest
	h.Sum(d[:0])
	return d
}

// Entry is a cached artifact.
type Entry struct {
	Schema  uint16
	Format  string    // Export format of Data
	Data    []byte    // Artifact bytes
	Created time.Time // Time the artifact was rendered
}

// Cache is a directory of msgpack encoded entries. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	dir     string
	maxSize int64
}

// Open opens the cache for app under the user cache directory.
func Open(app string, maxSize int64) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return New(filepath.Join(base, app), maxSize)
}

// New opens a cache in dir. A maxSize of zero or less disables the size limit.
func New(dir string, maxSize int64) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, maxSize: maxSize}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "artifacts", key.String()+".mp")
}

// Put stores an entry, replacing any previous one.
func (c *Cache) Put(key Digest, e *Entry) error {
	if c == nil || e == nil {
		return nil
	}

	size, err := safecast.Conv[int64](len(e.Data))
	if err != nil {
		return err
	}
	if c.maxSize > 0 && size > c.maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, c.maxSize)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	out := *e
	out.Schema = schemaVersion
	if err := msgpack.NewEncoder(f).Encode(&out); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), p)
}

// Get loads an entry. Missing entries and entries of another schema report false.
func (c *Cache) Get(key Digest) (*Entry, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var e Entry
	if err := msgpack.NewDecoder(f).Decode(&e); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if e.Schema != schemaVersion {
		return nil, false, nil
	}

	return &e, true, nil
}

// DropAll removes every entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}

	return os.MkdirAll(c.dir, 0o755)
}
