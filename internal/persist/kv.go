// Package persist provides durable local storage for the resume document:
// a file-backed key-value store standing in for browser local storage, an
// adapter that auto-persists the live store on every change, and named
// snapshots. Everything here is synchronous; there is no network I/O.
package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrKeyNotFound is returned by KV.Get when no value is stored at a key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal key-value contract the adapter persists through.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKV stores one JSON file per key under a root directory.
type FileKV struct {
	dir string
}

// NewFileKV creates the root directory if needed and returns a store over
// it.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

// Get reads the value stored at key, or ErrKeyNotFound.
func (f *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set writes value at key, replacing any existing value.
func (f *FileKV) Set(key string, value []byte) error {
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value at key. Deleting a missing key is a no-op.
func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) path(key string) string {
	// Keys are fixed well-known names, but keep them filesystem-safe anyway.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(f.dir, safe+".json")
}
