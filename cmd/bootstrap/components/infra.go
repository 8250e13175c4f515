package components

import (
	"context"
	"log/slog"
	"net/http"

	"hotelfront/internal/infra/backend"
	"hotelfront/internal/infra/metrics"
	"hotelfront/internal/infra/notify"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"
	"hotelfront/internal/usecase/reservation"
	"hotelfront/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		metrics.New,
		fx.Annotate(
			func(m *metrics.Metrics) *metrics.Metrics { return m },
			fx.As(new(cache.Metrics)),
			fx.As(new(reservation.RetryObserver)),
		),
		NewBackendClient,
		fx.Annotate(
			func(c *backend.Client) *backend.Client { return c },
			fx.As(new(content.Backend)),
			fx.As(new(reservation.Gateway)),
		),
		NewHub,
		fx.Annotate(
			NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend.BaseURL,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		backend.WithLogger(logger),
		backend.WithRateLimit(cfg.Backend.RateLimit, cfg.Backend.RateBurst),
	)
}

// NewHub accepts websocket upgrades from the same origins CORS allows.
func NewHub(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *notify.Hub {
	hub := notify.NewHub(logger, cfg.CORS.AllowOrigins)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}

func NewNotifier(clk clock.Clock, hub *notify.Hub, logger *slog.Logger) *notify.Multi {
	return notify.NewMulti(clk, notify.NewLogNotifier(logger), hub)
}
