//go:build unit || e2e

package cachestore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every cache.Store must share.
// newStore must return an empty, initialised store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) cache.Store) {
	ctx := context.Background()

	entry := func(key, data string) cache.Entry {
		return cache.Entry{
			Key:       key,
			Data:      json.RawMessage(data),
			Timestamp: 1741514400000,
			TTL:       1800000,
		}
	}

	t.Run("put then fetch", func(t *testing.T) {
		store := newStore(t)
		want := entry("hero_banner", `{"title":"Welcome"}`)
		require.NoError(t, store.Put(ctx, want))

		got, err := store.Fetch(ctx, "hero_banner")
		require.NoError(t, err)
		assert.Equal(t, want.Key, got.Key)
		assert.Equal(t, want.Timestamp, got.Timestamp)
		assert.Equal(t, want.TTL, got.TTL)
		assert.JSONEq(t, string(want.Data), string(got.Data))
	})

	t.Run("put replaces", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, entry("rooms", `[1]`)))
		replacement := entry("rooms", `[1,2]`)
		replacement.Timestamp++
		require.NoError(t, store.Put(ctx, replacement))

		got, err := store.Fetch(ctx, "rooms")
		require.NoError(t, err)
		assert.JSONEq(t, `[1,2]`, string(got.Data))
		assert.Equal(t, replacement.Timestamp, got.Timestamp)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("absent key", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Fetch(ctx, "missing")
		assert.True(t, errs.Is(err, errs.ErrCacheEntryNotFound))
	})

	t.Run("delete and clear", func(t *testing.T) {
		store := newStore(t)
		for i := range 5 {
			require.NoError(t, store.Put(ctx, entry(fmt.Sprintf("gallery_%d", i), `[]`)))
		}

		require.NoError(t, store.Delete(ctx, "gallery_0"))
		require.NoError(t, store.Delete(ctx, "never_stored"))
		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		require.NoError(t, store.Clear(ctx))
		n, err = store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("init is repeatable", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, entry("about_page", `{}`)))
		require.NoError(t, store.Init(ctx))

		got, err := store.Fetch(ctx, "about_page")
		require.NoError(t, err)
		if diff := cmp.Diff("about_page", got.Key); diff != "" {
			t.Errorf("key mismatch (-want +got):\n%s", diff)
		}
	})
}
