package report

import (
	"context"
	"sync"
)

const DefaultRecentLimit = 50

type Repository interface {
	Save(ctx context.Context, r Report) error
	// Recent returns at most limit reports, newest first.
	Recent(ctx context.Context, limit int) ([]Report, error)
}

// MemoryRepository keeps the last reports in a ring.
type MemoryRepository struct {
	mu    sync.Mutex
	ring  []Report
	next  int
	count int
}

func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultRecentLimit
	}
	return &MemoryRepository{ring: make([]Report, capacity)}
}

func (m *MemoryRepository) Save(_ context.Context, r Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ring[m.next] = r
	m.next = (m.next + 1) % len(m.ring)
	if m.count < len(m.ring) {
		m.count++
	}

	return nil
}

func (m *MemoryRepository) Recent(_ context.Context, limit int) ([]Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > m.count {
		limit = m.count
	}

	out := make([]Report, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.ring)) % len(m.ring)
		out = append(out, m.ring[idx])
	}

	return out, nil
}
