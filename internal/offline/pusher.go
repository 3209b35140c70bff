package offline

import (
	"context"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

// Pusher sends one pending item to the remote system.
type Pusher interface {
	Push(ctx context.Context, item models.PendingSyncItem) error
}

// SimulatedPusher stands in for a remote backend: it waits Delay and logs the item.
type SimulatedPusher struct {
	Delay time.Duration
}

func (p SimulatedPusher) Push(ctx context.Context, item models.PendingSyncItem) error {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	keyvals := []interface{}{"id", item.ID, "action", item.Action, "timestamp", item.Timestamp}
	if item.DayIndex != nil {
		keyvals = append(keyvals, "dayIndex", *item.DayIndex)
	}
	logger.Info("Synced item", keyvals...)
	return nil
}

// PusherFunc adapts a function to the Pusher interface.
type PusherFunc func(ctx context.Context, item models.PendingSyncItem) error

func (f PusherFunc) Push(ctx context.Context, item models.PendingSyncItem) error {
	return f(ctx, item)
}
