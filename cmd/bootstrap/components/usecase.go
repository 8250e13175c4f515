package components

import (
	"log/slog"

	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/usecase/acknowledgement"
	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"
	"hotelfront/internal/usecase/reservation"
	"hotelfront/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCacheModule,
	usecaseContentModule,
	usecaseReservationModule,
	usecaseAcknowledgementModule,
)

var usecaseCacheModule = fx.Module("usecase/cache",
	fx.Provide(
		cache.NewService,
		cache.NewWrapper,
	),
)

var usecaseContentModule = fx.Module("usecase/content",
	fx.Provide(
		content.NewService,
	),
)

var usecaseReservationModule = fx.Module("usecase/reservation",
	fx.Provide(
		NewRetrier,
		reservation.NewService,
	),
)

var usecaseAcknowledgementModule = fx.Module("usecase/acknowledgement",
	fx.Provide(
		func(cfg config.Config, clk clock.Clock, logger *slog.Logger) acknowledgement.Generator {
			return acknowledgement.NewGenerator(cfg.Ack, clk, logger)
		},
	),
)

func NewRetrier(cfg config.Config, clk clock.Clock, notifier shared.Notifier, observer reservation.RetryObserver, logger *slog.Logger) *reservation.Retrier {
	return reservation.NewRetrier(reservation.RetryConfig{
		Attempts:  cfg.Retry.Attempts,
		BaseDelay: cfg.Retry.BaseDelay,
	}, clk, notifier, logger).Observe(observer)
}
