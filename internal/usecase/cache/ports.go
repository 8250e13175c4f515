package cache

//go:generate mockgen -source=ports.go -destination=../../mock/cache/mock_ports.go -package=mock_cache

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one stored value. Timestamp and TTL are milliseconds.
type Entry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	TTL       int64           `json:"ttl"`
}

// Valid reports whether now - Timestamp < TTL.
func (e Entry) Valid(now time.Time) bool {
	return now.UnixMilli()-e.Timestamp < e.TTL
}

func (e Entry) CachedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Store is the durable engine behind the cache. Implementations must be safe
// for concurrent use and must not evaluate expiry themselves.
type Store interface {
	// Init creates the backing structure if absent. Safe to call repeatedly.
	Init(ctx context.Context) error
	Put(ctx context.Context, e Entry) error
	// Fetch returns errs.ErrCacheEntryNotFound when the key is absent.
	Fetch(ctx context.Context, key string) (*Entry, error)
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Metrics receives cache-aside decisions.
type Metrics interface {
	Hit(key string)
	Miss(key string)
	Stale(key string)
	FetchError(key string)
}

type NoopMetrics struct{}

func (NoopMetrics) Hit(string)        {}
func (NoopMetrics) Miss(string)       {}
func (NoopMetrics) Stale(string)      {}
func (NoopMetrics) FetchError(string) {}
