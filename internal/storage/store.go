// Package storage persists the engine's JSON documents across restarts.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Store is a durable key-value container of JSON documents.
type Store interface {
	// Load decodes the document stored under key into v. It reports false
	// with a nil error when no document exists.
	Load(key string, v any) (bool, error)
	// Save replaces the document stored under key with v.
	Save(key string, v any) error
}

// IOError is returned for every read or write failure of a Store.
type IOError struct {
	Op  string
	Key string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err is, or wraps, an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// MemoryStore keeps documents in memory. It still round-trips through JSON
// so callers never share memory with the stored copy.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Load implements Store.
func (m *MemoryStore) Load(key string, v any) (bool, error) {
	m.mu.Lock()
	data, ok := m.docs[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &IOError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// Save implements Store.
func (m *MemoryStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &IOError{Op: "encode", Key: key, Err: err}
	}
	m.mu.Lock()
	m.docs[key] = data
	m.mu.Unlock()
	return nil
}

// Keys returns the keys currently stored.
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.docs))
	for k := range m.docs {
		keys = append(keys, k)
	}
	return keys
}
