// Package notify delivers user-facing toasts to the log and to websocket
// subscribers.
package notify

import (
	"context"
	"log/slog"

	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/usecase/shared"
)

// LogNotifier writes every toast to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, note shared.Notification) {
	level := slog.LevelInfo
	if note.Level == shared.LevelError {
		level = slog.LevelWarn
	}
	n.logger.LogAttrs(ctx, level, "notification",
		slog.String("level", string(note.Level)),
		slog.String("message", note.Message),
		slog.String("topic", note.Topic),
	)
}

// Multi fans a toast out to each notifier in order and stamps it first.
type Multi struct {
	clock     clock.Clock
	notifiers []shared.Notifier
}

func NewMulti(clk clock.Clock, notifiers ...shared.Notifier) *Multi {
	return &Multi{clock: clk, notifiers: notifiers}
}

func (m *Multi) Notify(ctx context.Context, note shared.Notification) {
	if note.At.IsZero() {
		note.At = m.clock.Now()
	}
	for _, n := range m.notifiers {
		n.Notify(ctx, note)
	}
}
