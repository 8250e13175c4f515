package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"hotelfront/internal/infra/cachestore"
	"hotelfront/internal/infra/db"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/usecase/cache"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewCacheStore,
	),
)

// NewCacheStore opens the store selected by CACHE_DRIVER. Connections are
// closed when the app stops.
func NewCacheStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (cache.Store, error) {
	var (
		store   cache.Store
		cleanup func()
	)

	switch cfg.Cache.Driver {
	case "", "memory":
		store = cachestore.NewMemory()
	case "postgres":
		pool, closePool, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		store, cleanup = cachestore.NewPostgres(pool, cfg.Cache.Namespace, logger), closePool
	case "redis":
		client, closeClient, err := db.ConnectRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		store, cleanup = cachestore.NewRedis(client, cfg.Cache.Namespace, logger), closeClient
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}

	logger.Info("Cache store selected", "driver", cfg.Cache.Driver, "namespace", cfg.Cache.Namespace)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}
