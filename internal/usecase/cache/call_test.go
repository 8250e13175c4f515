//go:build unit

package cache_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotelfront/internal/usecase/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	mu     sync.Mutex
	events []string
}

func (m *recordingMetrics) record(kind, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, kind+":"+key)
}

func (m *recordingMetrics) Hit(key string)        { m.record("hit", key) }
func (m *recordingMetrics) Miss(key string)       { m.record("miss", key) }
func (m *recordingMetrics) Stale(key string)      { m.record("stale", key) }
func (m *recordingMetrics) FetchError(key string) { m.record("fetch_error", key) }

type countingFetch struct {
	calls atomic.Int32
	value []offer
	err   error
}

func (f *countingFetch) fetch(context.Context) ([]offer, error) {
	f.calls.Add(1)
	return f.value, f.err
}

func TestCall(t *testing.T) {
	ctx := context.Background()
	fresh := []offer{{Title: "Fresh"}}
	old := []offer{{Title: "Old"}}

	t.Run("miss fetches and stores", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		m := &recordingMetrics{}
		w := cache.NewWrapper(svc, m, nil)
		f := &countingFetch{value: fresh}

		res, err := cache.Call(ctx, w, "offers", time.Minute, f.fetch)
		require.NoError(t, err)
		assert.Equal(t, fresh, res.Data)
		assert.Equal(t, cache.SourceNetwork, res.Source)
		assert.False(t, res.Stale)

		var stored []offer
		found, err := svc.Get(ctx, "offers", &stored)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, fresh, stored)
		assert.Equal(t, []string{"miss:offers"}, m.events)
	})

	t.Run("hit does not fetch", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		require.NoError(t, svc.Set(ctx, "offers", old, time.Minute))
		m := &recordingMetrics{}
		w := cache.NewWrapper(svc, m, nil)
		f := &countingFetch{value: fresh}

		res, err := cache.Call(ctx, w, "offers", time.Minute, f.fetch)
		require.NoError(t, err)
		assert.Equal(t, old, res.Data)
		assert.Equal(t, cache.SourceCache, res.Source)
		assert.Equal(t, start, res.CachedAt.UTC())
		assert.Zero(t, f.calls.Load())
		assert.Equal(t, []string{"hit:offers"}, m.events)
	})

	t.Run("force refresh always fetches", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		require.NoError(t, svc.Set(ctx, "offers", old, time.Minute))
		w := cache.NewWrapper(svc, nil, nil)
		f := &countingFetch{value: fresh}

		res, err := cache.Call(ctx, w, "offers", time.Minute, f.fetch, cache.WithForceRefresh(true))
		require.NoError(t, err)
		assert.Equal(t, fresh, res.Data)
		assert.Equal(t, int32(1), f.calls.Load())
	})

	t.Run("fetch error falls back to expired entry", func(t *testing.T) {
		svc, clk, _ := newMemoryService(t)
		require.NoError(t, svc.Set(ctx, "offers", old, time.Minute))
		clk.Add(2 * time.Minute)
		m := &recordingMetrics{}
		w := cache.NewWrapper(svc, m, nil)
		f := &countingFetch{err: errors.New("backend down")}

		res, err := cache.Call(ctx, w, "offers", time.Minute, f.fetch)
		require.NoError(t, err)
		assert.Equal(t, old, res.Data)
		assert.Equal(t, cache.SourceStale, res.Source)
		assert.True(t, res.Stale)
		assert.Equal(t, []string{"miss:offers", "fetch_error:offers", "stale:offers"}, m.events)
	})

	t.Run("fetch error with nothing cached", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		w := cache.NewWrapper(svc, nil, nil)
		f := &countingFetch{err: errors.New("backend down")}

		_, err := cache.Call(ctx, w, "offers", time.Minute, f.fetch)
		assert.EqualError(t, err, "backend down")
	})

	t.Run("forced fetch error does not fall back", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		require.NoError(t, svc.Set(ctx, "offers", old, time.Minute))
		w := cache.NewWrapper(svc, nil, nil)
		f := &countingFetch{err: errors.New("backend down")}

		_, err := cache.Call(ctx, w, "offers", time.Minute, f.fetch, cache.WithForceRefresh(true))
		assert.EqualError(t, err, "backend down")
	})

	t.Run("concurrent misses share one fetch", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		w := cache.NewWrapper(svc, nil, nil)

		release := make(chan struct{})
		var calls atomic.Int32
		fetch := func(context.Context) ([]offer, error) {
			calls.Add(1)
			<-release
			return fresh, nil
		}

		const callers = 8
		var started, done sync.WaitGroup
		started.Add(callers)
		done.Add(callers)
		for range callers {
			go func() {
				defer done.Done()
				started.Done()
				res, err := cache.Call(ctx, w, "offers", time.Minute, fetch)
				assert.NoError(t, err)
				assert.Equal(t, fresh, res.Data)
			}()
		}
		started.Wait()
		time.Sleep(20 * time.Millisecond)
		close(release)
		done.Wait()

		assert.LessOrEqual(t, calls.Load(), int32(callers))
		assert.GreaterOrEqual(t, calls.Load(), int32(1))
	})
	t.Run("a cancelled caller does not fail the others waiting on the same key", func(t *testing.T) {
		svc, _, _ := newMemoryService(t)
		w := cache.NewWrapper(svc, nil, nil)

		entered := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32
		var fetchCtxErr atomic.Value
		fetch := func(fctx context.Context) ([]offer, error) {
			if calls.Add(1) == 1 {
				close(entered)
			}
			<-release
			fetchCtxErr.Store(fmt.Sprint(fctx.Err()))
			return fresh, nil
		}

		firstCtx, cancelFirst := context.WithCancel(ctx)
		firstDone := make(chan error, 1)
		go func() {
			_, err := cache.Call(firstCtx, w, "rooms", time.Minute, fetch)
			firstDone <- err
		}()
		<-entered

		type outcome struct {
			res cache.Result[[]offer]
			err error
		}
		secondDone := make(chan outcome, 1)
		go func() {
			res, err := cache.Call(context.Background(), w, "rooms", time.Minute, fetch)
			secondDone <- outcome{res: res, err: err}
		}()
		time.Sleep(20 * time.Millisecond)

		cancelFirst()
		assert.ErrorIs(t, <-firstDone, context.Canceled)

		close(release)
		second := <-secondDone
		require.NoError(t, second.err)
		assert.Equal(t, fresh, second.res.Data)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "<nil>", fetchCtxErr.Load())

		var stored []offer
		found, err := svc.Get(ctx, "rooms", &stored)
		require.NoError(t, err)
		assert.True(t, found)
	})
}
