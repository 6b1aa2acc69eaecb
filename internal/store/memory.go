package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store used by tests and local development.
// Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string

	// FailWith, when set, makes every operation return that error.
	// Lets tests exercise storage failure paths.
	FailWith error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{hashes: make(map[string]map[string]string)}
}

func (m *Memory) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.hashes[key]))
	for f, v := range m.hashes[key] {
		out[f] = v
	}
	return out, nil
}

func (m *Memory) HGet(ctx context.Context, key, field string) (string, error) {
	if m.FailWith != nil {
		return "", m.FailWith
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.hashes[key][field]
	if !ok {
		return "", ErrFieldNotFound
	}
	return v, nil
}

func (m *Memory) HSet(ctx context.Context, key, field, value string) error {
	if m.FailWith != nil {
		return m.FailWith
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hashes[key] == nil {
		m.hashes[key] = make(map[string]string)
	}
	m.hashes[key][field] = value
	return nil
}

func (m *Memory) HDel(ctx context.Context, key, field string) (int64, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.hashes[key][field]; !ok {
		return 0, nil
	}
	delete(m.hashes[key], field)
	return 1, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return m.FailWith
}

func (m *Memory) Close() error { return nil }

// Len reports the number of fields in the hash at key.
func (m *Memory) Len(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hashes[key])
}
