package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelfront/internal/handler/api"
	"hotelfront/internal/handler/middleware"
	"hotelfront/internal/infra/metrics"
	"hotelfront/internal/infra/notify"
	"hotelfront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Content         *api.ContentHandler
	Cache           *api.CacheHandler
	Reservation     *api.ReservationHandler
	Acknowledgement *api.AcknowledgementHandler
	Auth            *middleware.AuthMiddleware
	Logger          *middleware.Logger
	Metrics         *metrics.Metrics
	Hub             *notify.Hub
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, h Handlers) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(h.Logger.LoggingMiddleware())
	if h.Metrics != nil {
		engine.Use(h.Metrics.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if h.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
	if h.Hub != nil {
		engine.GET("/ws/notifications", gin.WrapF(h.Hub.ServeWS))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		contentGroup := apiGroup.Group("/content")
		addRoutes(contentGroup, []route{
			{Method: http.MethodGet, Path: "/hero-banner", Handler: h.Content.HeroBanner},
			{Method: http.MethodGet, Path: "/distinctives", Handler: h.Content.Distinctives},
			{Method: http.MethodGet, Path: "/offers", Handler: h.Content.CuratedOffers},
			{Method: http.MethodGet, Path: "/about", Handler: h.Content.AboutPage},
			{Method: http.MethodGet, Path: "/facilities", Handler: h.Content.Facilities},
			{Method: http.MethodGet, Path: "/gallery", Handler: h.Content.Gallery},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Content.Rooms},
			{Method: http.MethodGet, Path: "/rooms/:id", Handler: h.Content.RoomByID},
			{Method: http.MethodGet, Path: "/room-types", Handler: h.Content.RoomTypes},
			{Method: http.MethodGet, Path: "/membership", Handler: h.Content.Membership},
		})

		cacheGroup := apiGroup.Group("/cache")
		cacheGroup.Use(h.Auth.RequireAdmin())
		addRoutes(cacheGroup, []route{
			{Method: http.MethodGet, Path: "/size", Handler: h.Cache.Size},
			{Method: http.MethodPost, Path: "/warm", Handler: h.Cache.Warm},
			{Method: http.MethodDelete, Path: "", Handler: h.Cache.Clear},
			{Method: http.MethodDelete, Path: "/:key", Handler: h.Cache.Invalidate},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(h.Auth.OptionalAuth())
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "/room", Handler: h.Reservation.CreateRoomBooking},
			{Method: http.MethodGet, Path: "/room/:id/bookings", Handler: h.Reservation.GetRoomBookings},
			{Method: http.MethodPost, Path: "/:type", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodGet, Path: "/:type/:id", Handler: h.Reservation.GetReservation},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/confirmations", Handler: h.Reservation.Confirm, Mw: []gin.HandlerFunc{h.Auth.OptionalAuth()}},
			{Method: http.MethodPost, Path: "/acknowledgements/:type", Handler: h.Acknowledgement.Render},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
