package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotelfront/cmd/bootstrap"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const warmTimeout = 2 * time.Minute

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Invoke(
					prepareCache,
					startServer,
				),
			)

			if err := app.Start(context.Background()); err != nil {
				slog.Error("Failed to start application", "error", err)
				return err
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("Failed to stop application", "error", err)
			}

			slog.Info("Application stopped")
			return nil
		},
	}
}

// prepareCache initialises the store before traffic arrives. Warming runs in
// the background so a slow backend does not hold up startup.
func prepareCache(lc fx.Lifecycle, cfg config.Config, cacheService cache.Service, contentService content.Service, logger *slog.Logger) {
	warmCtx, cancelWarm := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cacheService.Init(ctx); err != nil {
				return err
			}
			if cfg.Cache.ClearOnStart {
				if err := cacheService.Clear(ctx); err != nil {
					return err
				}
				logger.Info("Cache cleared on startup")
			}
			if cfg.Cache.WarmOnStart {
				go func() {
					ctx, cancel := context.WithTimeout(warmCtx, warmTimeout)
					defer cancel()
					if err := contentService.Warm(ctx); err != nil {
						logger.Warn("Cache warm-up incomplete", "error", err)
						return
					}
					logger.Info("Cache warmed")
				}()
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelWarm()
			return nil
		},
	})
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
