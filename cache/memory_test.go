package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock steps time manually so expiry is deterministic.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func TestMemory_GetSet(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	store := NewMemory(clock.now)
	ctx := context.Background()

	_, ok := store.Get(ctx, "index:page=1")
	assert.False(t, ok, "empty store has no entries")

	store.Set(ctx, "index:page=1", []byte("payload"), 20*time.Second)
	value, ok := store.Get(ctx, "index:page=1")
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), value)
}

func TestMemory_Expiry(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	store := NewMemory(clock.now)
	ctx := context.Background()

	store.Set(ctx, "key", []byte("v1"), 20*time.Second)

	clock.advance(19 * time.Second)
	_, ok := store.Get(ctx, "key")
	assert.True(t, ok, "still inside the TTL window")

	clock.advance(2 * time.Second)
	_, ok = store.Get(ctx, "key")
	assert.False(t, ok, "expired entries must not be served")
}

func TestMemory_SetOverwrites(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	store := NewMemory(clock.now)
	ctx := context.Background()

	store.Set(ctx, "key", []byte("v1"), time.Second)
	clock.advance(30 * time.Second)
	store.Set(ctx, "key", []byte("v2"), time.Second)

	value, ok := store.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), value)
}
