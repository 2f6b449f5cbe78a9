// Package persist is the storage boundary for client-local storefront state.
// Each logical store (cart, coupon, favorites, orders, profile) persists its
// whole state under its own key; there are no cross-key transactions.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store saves and loads one JSON document per key. Implementations must be
// safe for concurrent use.
type Store interface {
	// Load unmarshals the document stored under key into v. It returns
	// (false, nil) when the key has never been written.
	Load(key string, v interface{}) (bool, error)
	// Save replaces the document stored under key.
	Save(key string, v interface{}) error
	// Delete removes the document stored under key, if any.
	Delete(key string) error
}

// Memory is an in-process Store. It is the default when no data directory is
// configured and the backing store used throughout the tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Load(key string, v interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// File stores one JSON file per key under a directory. Writes go through a
// temp file + rename so a partially written document is never observed.
type File struct {
	mu  sync.Mutex
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	// keys may carry a session namespace separator
	safe := strings.NewReplacer("/", "_", ":", "_", "\\", "_").Replace(key)
	return filepath.Join(f.dir, safe+".json")
}

func (f *File) Load(key string, v interface{}) (bool, error) {
	f.mu.Lock()
	raw, err := os.ReadFile(f.path(key))
	f.mu.Unlock()
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (f *File) Save(key string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
