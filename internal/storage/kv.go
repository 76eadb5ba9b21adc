// Package storage implements the persistence layer for the GlobeTrekker trip
// planner: a small key-value store holding a handful of JSON records (the
// trips collection, packing lists keyed by trip, user preferences, and a
// schema version tag), plus typed helpers layered on top. No business logic lives here — only serialization
// and record bookkeeping.
package storage

import (
	"context"
	"sync"
)

// KV is the minimal durable key-value interface the typed Store is built on.
// Get returns nil bytes (and a nil error) when the key is absent; this keeps
// "missing" distinct from "read failed" for the fail-soft read policy.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Memory is an in-process KV backend. It backs unit tests and ephemeral runs
// where nothing should touch disk.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemory returns an empty in-memory KV store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

// Get returns a copy of the stored value, or nil when the key is absent.
func (s *Memory) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value under key.
func (s *Memory) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// compile-time check: Memory must satisfy KV.
var _ KV = (*Memory)(nil)
