package reservation

import (
	"context"
	"log/slog"
	"time"

	"hotelfront/internal/infra/backend"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/usecase/shared"
)

const fallbackErrorMessage = "Request failed"

type RetryConfig struct {
	Attempts  int
	BaseDelay time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:  3,
		BaseDelay: 500 * time.Millisecond,
	}
}

// Retrier runs calls with linear backoff: the wait before attempt n+1 is
// BaseDelay * n.
type Retrier struct {
	cfg      RetryConfig
	clock    clock.Clock
	notifier shared.Notifier
	logger   *slog.Logger
	observer RetryObserver
}

// RetryObserver is told about every re-sent request.
type RetryObserver interface {
	Retry()
}

func NewRetrier(cfg RetryConfig, clk clock.Clock, notifier shared.Notifier, logger *slog.Logger) *Retrier {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &Retrier{
		cfg:      cfg,
		clock:    clk,
		notifier: notifier,
		logger:   logger,
	}
}

// Observe registers o for retry counts.
func (r *Retrier) Observe(o RetryObserver) *Retrier {
	r.observer = o
	return r
}

type retryOptions struct {
	attempts int
	notify   bool
}

type RetryOption func(*retryOptions)

func WithAttempts(n int) RetryOption {
	return func(o *retryOptions) {
		o.attempts = n
	}
}

// WithoutNotify suppresses the failure toast.
func WithoutNotify() RetryOption {
	return func(o *retryOptions) {
		o.notify = false
	}
}

// RequestWithRetry calls fn until it succeeds, the attempts are used up or
// the error is permanent. On failure it sends one error toast (unless
// suppressed) and returns the last error.
func RequestWithRetry[T any](ctx context.Context, r *Retrier, fn func(context.Context) (T, error), opts ...RetryOption) (T, error) {
	o := retryOptions{attempts: r.cfg.Attempts, notify: true}
	for _, opt := range opts {
		opt(&o)
	}
	attempts := max(1, o.attempts)

	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if !backend.IsTransient(err) {
			r.logger.WarnContext(ctx, "request failed permanently", "attempt", attempt, "error", err)
			break
		}
		if attempt == attempts {
			break
		}

		delay := r.cfg.BaseDelay * time.Duration(attempt)
		r.logger.WarnContext(ctx, "request failed, retrying", "attempt", attempt, "retry_in", delay, "error", err)
		if err := r.clock.Sleep(ctx, delay); err != nil {
			break
		}
		if r.observer != nil {
			r.observer.Retry()
		}
	}

	if o.notify && r.notifier != nil {
		r.notifier.Notify(ctx, shared.Notification{
			Level:   shared.LevelError,
			Message: backend.MessageOf(lastErr, fallbackErrorMessage),
			At:      r.clock.Now(),
		})
	}
	return zero, lastErr
}
