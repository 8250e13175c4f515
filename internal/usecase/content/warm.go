package content

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const warmConcurrency = 4

func (s *serviceImpl) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	for _, kind := range AllKinds {
		g.Go(func() error {
			res, err := s.load(ctx, kind, false)
			if err != nil {
				s.logger.Warn("content warm-up failed", "kind", kind, "error", err)
				return nil
			}
			s.logger.Debug("content warmed", "kind", kind, "source", res.Source)
			return nil
		})
	}
	return g.Wait()
}
