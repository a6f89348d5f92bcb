package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists expensive intermediate results under dir, one JSON file
// per key. Extracting the labeled cells of a large reference raster takes
// minutes, so repeated runs against the same raster and boundary reuse the
// cached extraction.
type FileCache[T any] struct {
	dir string
}

type entry[T any] struct {
	Payload  T         `json:"payload"`
	StoredAt time.Time `json:"stored_at"`
	Checksum string    `json:"checksum"`
}

func NewFileCache[T any](dir string) *FileCache[T] {
	return &FileCache[T]{dir: dir}
}

// GenerateKey derives a stable cache key from the inputs that determine the
// cached value, typically file paths and their modification times.
func (fc *FileCache[T]) GenerateKey(params ...interface{}) string {
	h := sha1.New()
	for _, param := range params {
		fmt.Fprintf(h, "%v_", param)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached payload for key. A missing file, unreadable entry or
// checksum mismatch all count as a miss.
func (fc *FileCache[T]) Get(key string) (T, bool) {
	var zero T

	raw, err := os.ReadFile(fc.path(key))
	if err != nil {
		return zero, false
	}

	var e entry[T]
	if err := json.Unmarshal(raw, &e); err != nil {
		return zero, false
	}
	if e.Checksum != checksum(e.Payload) {
		return zero, false
	}

	return e.Payload, true
}

// Set writes the payload for key, via a temp file so a crash mid-write never
// leaves a truncated entry behind.
func (fc *FileCache[T]) Set(key string, payload T) error {
	if err := os.MkdirAll(fc.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %v", err)
	}

	raw, err := json.Marshal(entry[T]{
		Payload:  payload,
		StoredAt: time.Now(),
		Checksum: checksum(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %v", err)
	}

	cacheFile := fc.path(key)
	tmpFile := cacheFile + ".tmp"

	if err := os.WriteFile(tmpFile, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp cache file: %v", err)
	}
	if err := os.Rename(tmpFile, cacheFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp cache file: %v", err)
	}

	return nil
}

func (fc *FileCache[T]) path(key string) string {
	return filepath.Join(fc.dir, key+".json")
}

func checksum[T any](payload T) string {
	raw, _ := json.Marshal(payload)
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
