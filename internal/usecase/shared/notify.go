package shared

//go:generate mockgen -source=notify.go -destination=../../mock/shared/mock_notify.go -package=mock_shared

import (
	"context"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a user-facing toast.
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Topic   string    `json:"topic,omitempty"`
	At      time.Time `json:"at"`
}

// Notifier delivers toasts. Delivery is best effort and never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
