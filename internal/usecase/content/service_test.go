//go:build unit

package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotelfront/internal/infra/backend"
	"hotelfront/internal/infra/cachestore"
	contentmock "hotelfront/internal/mock/content"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const roomsBody = `{"rooms":[
	{"_id":"r1","roomType":"Deluxe","roomStatus":"available","price":3500},
	{"_id":"r2","roomType":"Deluxe","roomStatus":"booked","price":3500},
	{"_id":"r3","roomType":"Suite","roomStatus":"maintenance","price":7000}
]}`

const galleryBody = `[
	{"category":"rooms","url":"a.jpg"},
	{"category":"dining","url":"b.jpg"},
	{"category":"rooms","url":"c.jpg"}
]`

type ContentServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockBackend *contentmock.MockBackend
	clock       *clock.MockClock
	cache       cache.Service
	service     content.Service
}

func (s *ContentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBackend = contentmock.NewMockBackend(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cache = cache.NewService(cachestore.NewMemory(), s.clock, logger)
	wrapper := cache.NewWrapper(s.cache, nil, logger)
	s.service = content.NewService(s.mockBackend, wrapper, config.NewTestConfig(), logger)
}

func (s *ContentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContentServiceSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}

func (s *ContentServiceTestSuite) TestSections() {
	ctx := context.Background()

	s.Run("hero banner is unwrapped and cached", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/content/home/hero-banner", "Failed to fetch hero banner").
			Return(json.RawMessage(`{"heroBanners":[{"title":"Welcome"}]}`), nil).Times(1)

		first, err := s.service.HeroBanner(ctx, false)
		s.Require().NoError(err)
		s.JSONEq(`[{"title":"Welcome"}]`, string(first.Data))
		s.Equal(cache.SourceNetwork, first.Source)

		second, err := s.service.HeroBanner(ctx, false)
		s.Require().NoError(err)
		s.Equal(cache.SourceCache, second.Source)
		s.JSONEq(`[{"title":"Welcome"}]`, string(second.Data))
	})

	s.Run("refresh bypasses a valid entry", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/content/about", gomock.Any()).
			Return(json.RawMessage(`{"v":1}`), nil).Times(1)
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/content/about", gomock.Any()).
			Return(json.RawMessage(`{"v":2}`), nil).Times(1)

		_, err := s.service.AboutPage(ctx, false)
		s.Require().NoError(err)
		res, err := s.service.AboutPage(ctx, true)
		s.Require().NoError(err)
		s.JSONEq(`{"v":2}`, string(res.Data))
	})

	s.Run("offers expire after their ttl", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/content/home/get-curated-offers", gomock.Any()).
			Return(json.RawMessage(`[]`), nil).Times(2)

		_, err := s.service.CuratedOffers(ctx, false)
		s.Require().NoError(err)
		s.clock.Add(15 * time.Minute)
		res, err := s.service.CuratedOffers(ctx, false)
		s.Require().NoError(err)
		s.Equal(cache.SourceNetwork, res.Source)
	})

	s.Run("stale entry is served when the backend fails", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/facilities/get-facilities", gomock.Any()).
			Return(json.RawMessage(`{"facilities":["Pool"]}`), nil).Times(1)
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/facilities/get-facilities", gomock.Any()).
			Return(nil, &backend.APIError{Status: 503, Message: "Failed to fetch facilities"}).Times(1)

		_, err := s.service.Facilities(ctx, false)
		s.Require().NoError(err)
		s.clock.Add(time.Hour)

		res, err := s.service.Facilities(ctx, false)
		s.Require().NoError(err)
		s.True(res.Stale)
		s.Equal(cache.SourceStale, res.Source)
		s.JSONEq(`["Pool"]`, string(res.Data))
	})

	s.Run("missing envelope field is an upstream error", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/rooms/get-rooms", gomock.Any()).
			Return(json.RawMessage(`{"items":[]}`), nil).Times(1)

		_, err := s.service.Rooms(ctx, false)
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrUpstreamRequest))
	})

	s.Run("membership passes through untouched", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/membership", gomock.Any()).
			Return(json.RawMessage(`{"tiers":["Silver"]}`), nil).Times(1)

		res, err := s.service.Membership(ctx, false)
		s.Require().NoError(err)
		s.JSONEq(`{"tiers":["Silver"]}`, string(res.Data))
	})
}

func (s *ContentServiceTestSuite) TestGallery() {
	ctx := context.Background()

	s.Run("bare list is accepted and filtered by category", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/content/gallery", gomock.Any()).
			Return(json.RawMessage(galleryBody), nil).Times(1)

		res, err := s.service.Gallery(ctx, "rooms", false)
		s.Require().NoError(err)
		s.JSONEq(`[{"category":"rooms","url":"a.jpg"},{"category":"rooms","url":"c.jpg"}]`, string(res.Data))

		all, err := s.service.Gallery(ctx, "", false)
		s.Require().NoError(err)
		s.JSONEq(galleryBody, string(all.Data))
	})

	s.Run("category view degrades to an empty list", func() {
		s.Require().NoError(s.cache.Clear(ctx))
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/content/gallery", gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		res, err := s.service.Gallery(ctx, "spa", false)
		s.Require().NoError(err)
		s.True(res.Stale)
		s.Equal(`[]`, string(res.Data))
	})
}

func (s *ContentServiceTestSuite) TestRooms() {
	ctx := context.Background()

	s.Run("room types grouped by availability", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/rooms/get-rooms", gomock.Any()).
			Return(json.RawMessage(roomsBody), nil).Times(1)

		types, err := s.service.RoomTypes(ctx, false)
		s.Require().NoError(err)

		want := []content.RoomType{
			{Type: "Deluxe", Available: true, Status: "Available"},
			{Type: "Suite", Available: false, Status: "Not Available"},
		}
		if diff := cmp.Diff(want, types); diff != "" {
			s.T().Errorf("room types mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("room by id comes from the cached list", func() {
		room, err := s.service.RoomByID(ctx, "r3")
		s.Require().NoError(err)
		s.JSONEq(`{"_id":"r3","roomType":"Suite","roomStatus":"maintenance","price":7000}`, string(room))
	})

	s.Run("unknown room is looked up directly", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/rooms/get-room/r9", "Room not found").
			Return(json.RawMessage(`{"room":{"_id":"r9"}}`), nil).Times(1)

		room, err := s.service.RoomByID(ctx, "r9")
		s.Require().NoError(err)
		s.JSONEq(`{"_id":"r9"}`, string(room))
	})

	s.Run("room missing everywhere", func() {
		s.mockBackend.EXPECT().FetchContent(gomock.Any(), "/rooms/get-room/r0", "Room not found").
			Return(nil, &backend.APIError{Status: 404, Message: "Room not found"}).Times(1)

		_, err := s.service.RoomByID(ctx, "r0")
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrRoomNotFound))
	})
}

func (s *ContentServiceTestSuite) TestWarmAndInvalidate() {
	ctx := context.Background()

	s.mockBackend.EXPECT().FetchContent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path, _ string) (json.RawMessage, error) {
			switch path {
			case "/content/home/hero-banner":
				return json.RawMessage(`{"heroBanners":[]}`), nil
			case "/facilities/get-facilities":
				return json.RawMessage(`{"facilities":[]}`), nil
			case "/rooms/get-rooms":
				return json.RawMessage(roomsBody), nil
			case "/membership":
				return nil, errors.New("timeout")
			default:
				return json.RawMessage(`[]`), nil
			}
		}).Times(len(content.AllKinds))

	s.Require().NoError(s.service.Warm(ctx))

	size, err := s.cache.Size(ctx)
	s.Require().NoError(err)
	s.Equal(int64(len(content.AllKinds)-1), size)

	s.Require().NoError(s.service.Invalidate(ctx, string(content.KindRooms)))
	size, err = s.cache.Size(ctx)
	s.Require().NoError(err)
	s.Equal(int64(len(content.AllKinds)-2), size)
}
