package components

import (
	"hotelfront/internal/handler"
	"hotelfront/internal/handler/api"
	"hotelfront/internal/handler/middleware"
	"hotelfront/internal/infra/metrics"
	"hotelfront/internal/infra/notify"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		jwt.NewInspector,
		NewAdminVerifier,
		middleware.NewAuthMiddleware,
		api.NewContentHandler,
		api.NewCacheHandler,
		api.NewReservationHandler,
		api.NewAcknowledgementHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Content         *api.ContentHandler
	Cache           *api.CacheHandler
	Reservation     *api.ReservationHandler
	Acknowledgement *api.AcknowledgementHandler
	Auth            *middleware.AuthMiddleware
	Logger          *middleware.Logger
	Metrics         *metrics.Metrics
	Hub             *notify.Hub
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Content:         p.Content,
		Cache:           p.Cache,
		Reservation:     p.Reservation,
		Acknowledgement: p.Acknowledgement,
		Auth:            p.Auth,
		Logger:          p.Logger,
		Metrics:         p.Metrics,
		Hub:             p.Hub,
	}
}

func NewAdminVerifier(cfg config.Config, clk clock.Clock) *jwt.Verifier {
	return jwt.NewVerifier(cfg.Auth.AdminSecret, clk)
}
