// Package storage provides the host key-value store the note collection
// persists through. A value is present or absent as a whole; writes replace
// the entire value or fail.
package storage

// KV is the storage boundary: get a value by key, or replace it.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value for key.
	Set(key, value string) error
}

// MemoryKV is an in-process store, used in tests.
type MemoryKV struct {
	m map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *MemoryKV) Set(key, value string) error {
	s.m[key] = value
	return nil
}

// NullKV reports every key absent and discards writes. It stands in when
// no persistent storage is available, so callers never need to special-case
// a missing backend.
type NullKV struct{}

// Get reports the key absent.
func (NullKV) Get(string) (string, bool, error) { return "", false, nil }

// Set discards the value.
func (NullKV) Set(string, string) error { return nil }
