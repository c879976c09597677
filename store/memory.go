package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is a map-backed KV with an optional byte capacity, mirroring
// the quota behavior of a browser's local storage. The zero capacity
// means unbounded.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	data     map[string][]byte
}

func NewMemory(capacity int) *Memory {
	return &Memory{
		capacity: capacity,
		data:     make(map[string][]byte),
	}
}

func (m *Memory) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing %q: %w: %s", key, ErrSerialization, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.capacity > 0 {
		used := 0
		for k, v := range m.data {
			if k != key {
				used += len(v)
			}
		}
		if used+len(b) > m.capacity {
			return fmt.Errorf("saving %q: %w", key, ErrQuotaExceeded)
		}
	}

	m.data[key] = b
	return nil
}

func (m *Memory) Load(ctx context.Context, key string, dest any) error {
	m.mu.RLock()
	b, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("loading %q: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decoding %q: %w: %s", key, ErrSerialization, err)
	}
	return nil
}

// Corrupt overwrites a key with unparsable bytes. Tests use it to
// exercise the default-fallback path on load.
func (m *Memory) Corrupt(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte("{not json")
}
