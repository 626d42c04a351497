package notice

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.store, k)
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func TestQueue_PushAndConsume(t *testing.T) {
	q := NewQueue(newMemoryCache(), time.Minute)
	ctx := context.Background()

	q.Push(ctx, "tok", "Member registered.")
	q.Push(ctx, "tok", "Member deleted.")

	got := q.Consume(ctx, "tok")
	require.Equal(t, []string{"Member registered.", "Member deleted."}, got)

	// Consumed means gone.
	assert.Nil(t, q.Consume(ctx, "tok"))
}

func TestQueue_TokensAreIsolated(t *testing.T) {
	q := NewQueue(newMemoryCache(), time.Minute)
	ctx := context.Background()

	q.Push(ctx, "a", "for a")
	q.Push(ctx, "b", "for b")

	assert.Equal(t, []string{"for a"}, q.Consume(ctx, "a"))
	assert.Equal(t, []string{"for b"}, q.Consume(ctx, "b"))
}

func TestQueue_EmptyToken(t *testing.T) {
	q := NewQueue(newMemoryCache(), time.Minute)
	ctx := context.Background()

	q.Push(ctx, "", "dropped")
	assert.Nil(t, q.Consume(ctx, ""))
}
