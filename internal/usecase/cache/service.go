package cache

//go:generate mockgen -source=service.go -destination=../../mock/cache/mock_service.go -package=mock_cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/errs"
)

// DefaultTTL applies when Set is called with a non-positive ttl.
const DefaultTTL = 30 * time.Minute

type Service interface {
	Init(ctx context.Context) error
	Set(ctx context.Context, key string, data any, ttl time.Duration) error
	// Get decodes a valid entry into out. Expired entries are deleted and
	// reported as absent.
	Get(ctx context.Context, key string, out any) (bool, error)
	// Peek returns the raw entry without evaluating expiry, or nil if absent.
	Peek(ctx context.Context, key string) (*Entry, error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Size(ctx context.Context) (int64, error)
	Now() time.Time
}

type serviceImpl struct {
	store  Store
	clock  clock.Clock
	logger *slog.Logger

	initMu sync.Mutex
	ready  bool
}

func NewService(store Store, clk clock.Clock, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceImpl{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

func (s *serviceImpl) Init(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.ready {
		return nil
	}
	if err := s.store.Init(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "init cache store"), errs.ErrCacheUnavailable)
	}
	s.ready = true
	s.logger.Debug("cache store initialized")
	return nil
}

func (s *serviceImpl) Set(ctx context.Context, key string, data any, ttl time.Duration) error {
	if err := s.Init(ctx); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return errs.Wrapf(err, "encode cache value for %q", key)
	}

	return s.store.Put(ctx, Entry{
		Key:       key,
		Data:      raw,
		Timestamp: s.clock.Now().UnixMilli(),
		TTL:       ttl.Milliseconds(),
	})
}

func (s *serviceImpl) Get(ctx context.Context, key string, out any) (bool, error) {
	entry, err := s.Peek(ctx, key)
	if err != nil || entry == nil {
		return false, err
	}

	if !entry.Valid(s.clock.Now()) {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete expired cache entry", "key", key, "error", err)
		}
		return false, nil
	}

	if err := json.Unmarshal(entry.Data, out); err != nil {
		return false, errs.Wrapf(err, "decode cache value for %q", key)
	}
	return true, nil
}

func (s *serviceImpl) Peek(ctx context.Context, key string) (*Entry, error) {
	if err := s.Init(ctx); err != nil {
		return nil, err
	}

	entry, err := s.store.Fetch(ctx, key)
	if err != nil {
		if errs.Is(err, errs.ErrCacheEntryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func (s *serviceImpl) Delete(ctx context.Context, key string) error {
	if err := s.Init(ctx); err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

func (s *serviceImpl) Clear(ctx context.Context) error {
	if err := s.Init(ctx); err != nil {
		return err
	}
	return s.store.Clear(ctx)
}

func (s *serviceImpl) Size(ctx context.Context) (int64, error) {
	if err := s.Init(ctx); err != nil {
		return 0, err
	}
	return s.store.Count(ctx)
}

func (s *serviceImpl) Now() time.Time {
	return s.clock.Now()
}
