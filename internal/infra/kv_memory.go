package infra

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/Vovarama1992/planbmusic/internal/ports"
)

// MemoryKV is an in-process store for tests and dry runs.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = slices.Clone(value)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) GetByPrefix(_ context.Context, prefix string) ([]ports.KVEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ports.KVEntry, 0)
	for k, v := range m.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, ports.KVEntry{Key: k, Value: slices.Clone(v)})
		}
	}
	slices.SortFunc(out, func(a, b ports.KVEntry) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
