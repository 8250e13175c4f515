package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"hotelfront/internal/infra"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 200

// Redis stores each entry as a JSON string under "<namespace>:cache:<key>"
// and tracks the stored keys in the set "<namespace>:cache-index", which
// Count reads. Keys carry no native expiry; an expired entry stays readable
// until it is replaced or deleted.
type Redis struct {
	client    redis.UniversalClient
	namespace string
	logger    *slog.Logger
}

func NewRedis(client redis.UniversalClient, namespace string, logger *slog.Logger) *Redis {
	return &Redis{client: client, namespace: namespace, logger: logger}
}

func (r *Redis) key(k string) string {
	return r.namespace + ":cache:" + k
}

func (r *Redis) pattern() string {
	return r.namespace + ":cache:*"
}

func (r *Redis) indexKey() string {
	return r.namespace + ":cache-index"
}

func (r *Redis) Init(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return infra.WrapInfraErr(r.logger, infra.KindStoreFailure, "ping redis", err)
	}
	return nil
}

func (r *Redis) Put(ctx context.Context, e cache.Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return infra.WrapInfraErr(r.logger, infra.KindDecodeFailure, "encode cache entry", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(e.Key), raw, 0)
		pipe.SAdd(ctx, r.indexKey(), e.Key)
		return nil
	})
	if err != nil {
		return infra.WrapInfraErr(r.logger, infra.KindStoreFailure, "set cache entry", err)
	}
	return nil
}

func (r *Redis) Fetch(ctx context.Context, key string) (*cache.Entry, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrCacheEntryNotFound
		}
		return nil, infra.WrapInfraErr(r.logger, infra.KindStoreFailure, "get cache entry", err)
	}

	var e cache.Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, infra.WrapInfraErr(r.logger, infra.KindDecodeFailure, "decode cache entry", err)
	}
	e.Key = key
	return &e, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key(key))
		pipe.SRem(ctx, r.indexKey(), key)
		return nil
	})
	if err != nil {
		return infra.WrapInfraErr(r.logger, infra.KindStoreFailure, "delete cache entry", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	err := r.scan(ctx, func(keys []string) error {
		return r.client.Del(ctx, keys...).Err()
	})
	if err == nil {
		err = r.client.Del(ctx, r.indexKey()).Err()
	}
	if err != nil {
		return infra.WrapInfraErr(r.logger, infra.KindStoreFailure, "clear cache entries", err)
	}
	return nil
}

// Count reads the index set. SCAN may return a key more than once, so it is
// not used for counting.
func (r *Redis) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, r.indexKey()).Result()
	if err != nil {
		return 0, infra.WrapInfraErr(r.logger, infra.KindStoreFailure, "count cache entries", err)
	}
	return n, nil
}

// scan hands every entry key of the namespace to fn in SCAN-sized batches.
// Batches may repeat keys, which DEL tolerates.
func (r *Redis) scan(ctx context.Context, fn func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.pattern(), scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
