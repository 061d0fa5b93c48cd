package cache

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process Store. The clock is injected so tests can move
// time instead of sleeping.
type Memory struct {
	items cmap.ConcurrentMap[string, entry]
	now   func() time.Time
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		items: cmap.New[entry](),
		now:   now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	e, ok := m.items.Get(key)
	if !ok {
		return nil, false
	}
	if m.now().After(e.expires) {
		m.items.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.items.Set(key, entry{value: value, expires: m.now().Add(ttl)})
}
