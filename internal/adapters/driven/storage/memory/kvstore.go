// Package memory provides in-memory fakes of the driven storage
// ports for testing.
package memory

import (
	"sort"
	"sync"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KVStore = (*KVStore)(nil)

// KVStore is an in-memory implementation of driven.KVStore for
// testing. SetFailWrites simulates a full or broken medium.
type KVStore struct {
	mu         sync.RWMutex
	values     map[string][]byte
	failWrites bool
	writeErr   error
}

// NewKVStore creates a new in-memory KV store.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string][]byte)}
}

// SetFailWrites makes every subsequent Set return err.
func (s *KVStore) SetFailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = err != nil
	s.writeErr = err
}

// Get retrieves the raw value stored under key.
func (s *KVStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Set stores the raw value under key.
func (s *KVStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return s.writeErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

// Delete removes the value stored under key.
func (s *KVStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Keys returns all stored key names, sorted.
func (s *KVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close releases the store (no-op for memory).
func (s *KVStore) Close() error {
	return nil
}

// Path returns the storage location.
func (s *KVStore) Path() string {
	return ":memory:"
}
