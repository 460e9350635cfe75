// Package kv is a small key/value store holding JSON documents.
package kv

import (
	"encoding/json"
	"sync"
)

// Store is the storage contract used by features that need to persist JSON.
// Get reports false when the key is absent.
type Store interface {
	Get(key string) (json.RawMessage, bool, error)
	Set(key string, value json.RawMessage) error
	Delete(key string) error
}

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	items map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(key string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

func (m *Memory) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return ErrInvalidJSON
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = clone(value)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func clone(v json.RawMessage) json.RawMessage {
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}
