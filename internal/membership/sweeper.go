package membership

import (
	"context"
	"time"

	"clubsphere/internal/logger"
)

// StartSweeper expires overdue paid memberships every interval until ctx is
// cancelled. It runs once immediately.
func StartSweeper(ctx context.Context, svc Service, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		sweep(ctx, svc)

		select {
		case <-ctx.Done():
			logger.Info("membership sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

func sweep(ctx context.Context, svc Service) {
	n, err := svc.ExpireOverdue(ctx, time.Now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("membership sweep failed", "error", err)
		}
		return
	}
	if n > 0 {
		logger.Info("expired overdue memberships", "count", n)
	}
}
