package cli

import (
	"context"

	"hotelfront/cmd/bootstrap"
	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or reset the content cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "size",
			Short: "Print the number of cached entries",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(cmd.Context(), func(ctx context.Context, svc cache.Service, _ content.Service) error {
					n, err := svc.Size(ctx)
					if err != nil {
						return err
					}
					cmd.Println(n)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cached entry",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(cmd.Context(), func(ctx context.Context, svc cache.Service, _ content.Service) error {
					return svc.Clear(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "warm",
			Short: "Fetch every content section into the cache",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCache(cmd.Context(), func(ctx context.Context, _ cache.Service, svc content.Service) error {
					return svc.Warm(ctx)
				})
			},
		},
	)
	return cmd
}

// withCache builds the non-HTTP part of the app, runs fn and tears it down.
func withCache(ctx context.Context, fn func(context.Context, cache.Service, content.Service) error) error {
	var (
		cacheService   cache.Service
		contentService content.Service
	)

	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(&cacheService, &contentService),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	if err := cacheService.Init(ctx); err != nil {
		return err
	}
	return fn(ctx, cacheService, contentService)
}
