package medium

import (
	"context"
	"fmt"
	"sync"

	"github.com/magangjo/backoffice/internal/common"
)

// Memory keeps everything in a map. Used by tests and ephemeral runs.
// An optional quota makes storage-full behavior reproducible: once the
// total size of stored values would exceed maxBytes, Set fails with
// common.ErrQuotaExceeded, like a browser medium throwing on overflow.
type Memory struct {
	mu       sync.Mutex
	items    map[string][]byte
	maxBytes int
}

// NewMemory returns an unbounded in-memory medium.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// NewMemoryWithQuota returns an in-memory medium that refuses writes once
// the total stored bytes would exceed maxBytes.
func NewMemoryWithQuota(maxBytes int) *Memory {
	return &Memory{items: make(map[string][]byte), maxBytes: maxBytes}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxBytes > 0 {
		total := len(value)
		for k, v := range m.items {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > m.maxBytes {
			return fmt.Errorf("failed to set %s: %w", key, common.ErrQuotaExceeded)
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[key] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string][]byte)
	return nil
}

func (m *Memory) Close() error { return nil }

var _ Medium = (*Memory)(nil)
