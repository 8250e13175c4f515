package cachestore

import (
	"context"
	"errors"
	"log/slog"

	"hotelfront/internal/infra"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by the store; *pgxpool.Pool satisfies it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	createTableSQL = `
CREATE TABLE IF NOT EXISTS cache_entries (
	namespace    TEXT   NOT NULL,
	key          TEXT   NOT NULL,
	data         JSONB  NOT NULL,
	timestamp_ms BIGINT NOT NULL,
	ttl_ms       BIGINT NOT NULL,
	PRIMARY KEY (namespace, key)
)`
	createIndexSQL = `CREATE INDEX IF NOT EXISTS cache_entries_timestamp_idx ON cache_entries (namespace, timestamp_ms)`

	upsertSQL = `
INSERT INTO cache_entries (namespace, key, data, timestamp_ms, ttl_ms)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (namespace, key) DO UPDATE
SET data = EXCLUDED.data, timestamp_ms = EXCLUDED.timestamp_ms, ttl_ms = EXCLUDED.ttl_ms`
	selectSQL = `SELECT data, timestamp_ms, ttl_ms FROM cache_entries WHERE namespace = $1 AND key = $2`
	deleteSQL = `DELETE FROM cache_entries WHERE namespace = $1 AND key = $2`
	clearSQL  = `DELETE FROM cache_entries WHERE namespace = $1`
	countSQL  = `SELECT COUNT(*) FROM cache_entries WHERE namespace = $1`
)

// Postgres persists entries in a single table scoped by namespace.
type Postgres struct {
	db        DBTX
	namespace string
	logger    *slog.Logger
}

func NewPostgres(db DBTX, namespace string, logger *slog.Logger) *Postgres {
	return &Postgres{db: db, namespace: namespace, logger: logger}
}

func (p *Postgres) Init(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createTableSQL); err != nil {
		return infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "create cache table", err)
	}
	if _, err := p.db.Exec(ctx, createIndexSQL); err != nil {
		return infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "create cache index", err)
	}
	return nil
}

func (p *Postgres) Put(ctx context.Context, e cache.Entry) error {
	_, err := p.db.Exec(ctx, upsertSQL, p.namespace, e.Key, []byte(e.Data), e.Timestamp, e.TTL)
	if err != nil {
		return infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "upsert cache entry", err)
	}
	return nil
}

func (p *Postgres) Fetch(ctx context.Context, key string) (*cache.Entry, error) {
	var (
		data []byte
		e    = cache.Entry{Key: key}
	)
	err := p.db.QueryRow(ctx, selectSQL, p.namespace, key).Scan(&data, &e.Timestamp, &e.TTL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCacheEntryNotFound
		}
		return nil, infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "select cache entry", err)
	}
	e.Data = data
	return &e, nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.db.Exec(ctx, deleteSQL, p.namespace, key); err != nil {
		return infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "delete cache entry", err)
	}
	return nil
}

func (p *Postgres) Clear(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, clearSQL, p.namespace); err != nil {
		return infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "clear cache entries", err)
	}
	return nil
}

func (p *Postgres) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := p.db.QueryRow(ctx, countSQL, p.namespace).Scan(&n); err != nil {
		return 0, infra.WrapInfraErr(p.logger, infra.KindStoreFailure, "count cache entries", err)
	}
	return n, nil
}
