package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

type Source string

const (
	SourceCache   Source = "cache"
	SourceNetwork Source = "network"
	SourceStale   Source = "stale"
)

type Result[T any] struct {
	Data     T
	Source   Source
	Stale    bool
	CachedAt time.Time
}

type callOptions struct {
	force bool
}

type CallOption func(*callOptions)

// WithForceRefresh deletes the entry first and always fetches.
func WithForceRefresh(force bool) CallOption {
	return func(o *callOptions) {
		o.force = force
	}
}

// Wrapper turns fetch functions into cache-aside reads.
type Wrapper struct {
	svc     Service
	metrics Metrics
	logger  *slog.Logger
	group   singleflight.Group
}

func NewWrapper(svc Service, metrics Metrics, logger *slog.Logger) *Wrapper {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Wrapper{
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}
}

func (w *Wrapper) Service() Service {
	return w.svc
}

// Call serves key from the cache while it is valid and otherwise runs fetch
// and stores its result. When fetch fails on a non-forced call, any stored
// value is returned, expired or not, tagged as stale.
func Call[T any](ctx context.Context, w *Wrapper, key string, ttl time.Duration, fetch func(context.Context) (T, error), opts ...CallOption) (Result[T], error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	var stale *Entry
	if o.force {
		if err := w.svc.Delete(ctx, key); err != nil {
			w.logger.WarnContext(ctx, "cache delete failed before forced refresh", "key", key, "error", err)
		}
	} else {
		entry, err := w.svc.Peek(ctx, key)
		switch {
		case err != nil:
			w.logger.WarnContext(ctx, "cache read failed, falling through to network", "key", key, "error", err)
		case entry != nil && entry.Valid(w.svc.Now()):
			var data T
			if err := json.Unmarshal(entry.Data, &data); err == nil {
				w.metrics.Hit(key)
				w.logger.DebugContext(ctx, "serving from cache", "key", key)
				return Result[T]{Data: data, Source: SourceCache, CachedAt: entry.CachedAt()}, nil
			}
			w.logger.WarnContext(ctx, "undecodable cache entry treated as miss", "key", key)
		case entry != nil:
			stale = entry
		}
	}

	w.metrics.Miss(key)
	data, err := load(ctx, w, key, ttl, fetch, o.force)
	if err == nil {
		return Result[T]{Data: data, Source: SourceNetwork, CachedAt: w.svc.Now()}, nil
	}

	w.metrics.FetchError(key)
	if o.force {
		return Result[T]{}, err
	}

	if stale == nil {
		// The entry may have been written by a concurrent caller.
		if entry, peekErr := w.svc.Peek(ctx, key); peekErr == nil {
			stale = entry
		}
	}
	if stale != nil {
		var data T
		if decodeErr := json.Unmarshal(stale.Data, &data); decodeErr == nil {
			w.metrics.Stale(key)
			w.logger.WarnContext(ctx, "serving stale cache entry after fetch error", "key", key, "error", err)
			return Result[T]{Data: data, Source: SourceStale, Stale: true, CachedAt: stale.CachedAt()}, nil
		}
	}
	return Result[T]{}, err
}

func (w *Wrapper) storeResult(ctx context.Context, key string, data any, ttl time.Duration) {
	if err := w.svc.Set(ctx, key, data, ttl); err != nil {
		w.logger.WarnContext(ctx, "failed to store fetched value", "key", key, "error", err)
	}
}

// load collapses concurrent non-forced misses for the same key into one fetch.
// The shared fetch outlives any single caller; each caller stops waiting when
// its own ctx is done.
func load[T any](ctx context.Context, w *Wrapper, key string, ttl time.Duration, fetch func(context.Context) (T, error), force bool) (T, error) {
	run := func(ctx context.Context) (T, error) {
		data, err := fetch(ctx)
		if err != nil {
			return data, err
		}
		w.storeResult(ctx, key, data, ttl)
		return data, nil
	}
	if force {
		return run(ctx)
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := w.group.DoChan(key, func() (any, error) {
		return run(flightCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		data, _ := res.Val.(T)
		return data, nil
	}
}
