package store

import (
	"fmt"
	"sync"
)

// Interface compliance check.
var _ Store[int] = (*Memory[int])(nil)

// Memory is a mutex-guarded in-memory Store. IDs come from a counter
// held under the same lock, so single-threaded callers see a dense
// "<prefix>_1..N" sequence and concurrent callers never collide.
type Memory[T any] struct {
	mu     sync.Mutex
	prefix string
	seq    int
	recs   map[string]T
	order  []string
}

// NewMemory creates an empty in-memory store issuing IDs with the given
// prefix.
func NewMemory[T any](prefix string) *Memory[T] {
	return &Memory[T]{
		prefix: prefix,
		recs:   make(map[string]T),
	}
}

func (m *Memory[T]) NextID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("%s_%d", m.prefix, m.seq)
}

func (m *Memory[T]) Put(id string, rec T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.recs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.recs[id] = rec
}

func (m *Memory[T]) Get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	return rec, ok
}

func (m *Memory[T]) List() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.recs[id])
	}
	return out
}

func (m *Memory[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.recs)
}
