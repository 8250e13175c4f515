package content

//go:generate mockgen -source=service.go -destination=../../mock/content/mock_service.go -package=mock_content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotelfront/internal/pkg/config"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"
)

// Backend is the content side of the hotel REST backend.
type Backend interface {
	// FetchContent returns the raw body of a successful GET or an error
	// whose message is the server's, or fallback.
	FetchContent(ctx context.Context, path, fallback string) (json.RawMessage, error)
}

// Result is cached content together with where it was served from.
type Result = cache.Result[json.RawMessage]

type Service interface {
	HeroBanner(ctx context.Context, force bool) (Result, error)
	Distinctives(ctx context.Context, force bool) (Result, error)
	CuratedOffers(ctx context.Context, force bool) (Result, error)
	AboutPage(ctx context.Context, force bool) (Result, error)
	Facilities(ctx context.Context, force bool) (Result, error)
	Gallery(ctx context.Context, category string, force bool) (Result, error)
	Rooms(ctx context.Context, force bool) (Result, error)
	RoomByID(ctx context.Context, id string) (json.RawMessage, error)
	RoomTypes(ctx context.Context, force bool) ([]RoomType, error)
	Membership(ctx context.Context, force bool) (Result, error)
	// Warm fetches every content type once, concurrently.
	Warm(ctx context.Context) error
	Invalidate(ctx context.Context, key string) error
}

type serviceImpl struct {
	backend Backend
	wrapper *cache.Wrapper
	logger  *slog.Logger
	items   map[Kind]descriptor
}

func NewService(backend Backend, wrapper *cache.Wrapper, cfg config.Config, logger *slog.Logger) Service {
	return &serviceImpl{
		backend: backend,
		wrapper: wrapper,
		logger:  logger,
		items:   descriptors(cfg.Content),
	}
}

func (s *serviceImpl) HeroBanner(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindHeroBanner, force)
}

func (s *serviceImpl) Distinctives(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindDistinctives, force)
}

func (s *serviceImpl) CuratedOffers(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindCuratedOffers, force)
}

func (s *serviceImpl) AboutPage(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindAboutPage, force)
}

func (s *serviceImpl) Facilities(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindFacilities, force)
}

func (s *serviceImpl) Rooms(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindRooms, force)
}

func (s *serviceImpl) Membership(ctx context.Context, force bool) (Result, error) {
	return s.load(ctx, KindMembership, force)
}

func (s *serviceImpl) Invalidate(ctx context.Context, key string) error {
	return s.wrapper.Service().Delete(ctx, key)
}

func (s *serviceImpl) load(ctx context.Context, kind Kind, force bool) (Result, error) {
	d, ok := s.items[kind]
	if !ok {
		return Result{}, errs.Newf("unknown content kind %q", kind)
	}

	fetch := func(ctx context.Context) (json.RawMessage, error) {
		body, err := s.backend.FetchContent(ctx, d.path, d.fallback)
		if err != nil {
			return nil, err
		}
		return d.unwrap(body)
	}
	return cache.Call(ctx, s.wrapper, d.key, d.ttl, fetch, cache.WithForceRefresh(force))
}

// descriptor binds one content type to its endpoint, cache key and TTL.
type descriptor struct {
	key      string
	path     string
	field    string
	bareOK   bool
	ttl      time.Duration
	fallback string
}

// unwrap extracts the endpoint-specific envelope field.
func (d descriptor) unwrap(body json.RawMessage) (json.RawMessage, error) {
	if d.field == "" {
		return body, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		if d.bareOK {
			return body, nil
		}
		return nil, errs.Mark(errs.Wrapf(err, "decode %s response", d.key), errs.ErrUpstreamRequest)
	}
	if v, ok := obj[d.field]; ok && string(v) != "null" {
		return v, nil
	}
	if d.bareOK {
		return body, nil
	}
	return nil, errs.Mark(errs.Newf("%s response has no %q field", d.key, d.field), errs.ErrUpstreamRequest)
}
