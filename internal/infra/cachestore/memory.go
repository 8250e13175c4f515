package cachestore

import (
	"context"
	"hash/fnv"
	"sync"

	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"
)

const memoryShards = 16

type memoryShard struct {
	mu      sync.RWMutex
	entries map[string]cache.Entry
}

// Memory keeps entries in process memory, split across shards by key hash so
// writers to different keys do not contend on one lock.
type Memory struct {
	shards [memoryShards]*memoryShard
}

func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.shards {
		m.shards[i] = &memoryShard{entries: make(map[string]cache.Entry)}
	}
	return m
}

func (m *Memory) shard(key string) *memoryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return m.shards[h.Sum32()%memoryShards]
}

func (m *Memory) Init(_ context.Context) error {
	return nil
}

func (m *Memory) Put(_ context.Context, e cache.Entry) error {
	s := m.shard(e.Key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e.Data = append([]byte(nil), e.Data...)
	s.entries[e.Key] = e
	return nil
}

func (m *Memory) Fetch(_ context.Context, key string) (*cache.Entry, error) {
	s := m.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, errs.ErrCacheEntryNotFound
	}
	e.Data = append([]byte(nil), e.Data...)
	return &e, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	for _, s := range m.shards {
		s.mu.Lock()
		clear(s.entries)
		s.mu.Unlock()
	}
	return nil
}

func (m *Memory) Count(_ context.Context) (int64, error) {
	var n int64
	for _, s := range m.shards {
		s.mu.RLock()
		n += int64(len(s.entries))
		s.mu.RUnlock()
	}
	return n, nil
}
